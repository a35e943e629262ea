package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the engine's operational metrics and serves them on a
// dedicated listener.
type Collector struct {
	registry         *prometheus.Registry
	accountsCreated  prometheus.Counter
	transfers        *prometheus.CounterVec
	transferDuration prometheus.Histogram
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		accountsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		transfers: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transfers_total",
			Help: "Total number of transfer attempts by result",
		}, []string{"result"}),
		transferDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transfer_duration_seconds",
			Help:    "Time taken to execute a transfer",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (c *Collector) RecordAccountCreated() {
	c.accountsCreated.Inc()
}

// RecordTransfer counts one transfer attempt. Result is "committed" for a
// successful transfer or the name of the rejection kind.
func (c *Collector) RecordTransfer(result string, duration time.Duration) {
	c.transfers.WithLabelValues(result).Inc()
	c.transferDuration.Observe(duration.Seconds())
}

// Handler exposes the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Server(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
