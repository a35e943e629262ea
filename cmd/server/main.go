package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/souyave/payments-engine/internal/adapter/http/controller"
	"github.com/souyave/payments-engine/internal/adapter/http/router"
	"github.com/souyave/payments-engine/internal/adapter/repository/memory"
	"github.com/souyave/payments-engine/internal/config"
	"github.com/souyave/payments-engine/internal/logger"
	"github.com/souyave/payments-engine/internal/metrics"
	"github.com/souyave/payments-engine/internal/sequence"
	"github.com/souyave/payments-engine/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	accountSeq := sequence.New()
	transactionSeq := sequence.New()
	accountRepo := memory.NewAccountRepository(accountSeq)
	transactionRepo := memory.NewTransactionRepository()
	collector := metrics.NewCollector()

	ledgerService := services.NewLedgerService(accountRepo, transactionRepo, accountSeq, transactionSeq, collector)
	accountsController := controller.NewAccountsController(ledgerService, cfg.MiniStatementLimit)

	apiServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router.New(accountsController),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	metricsServer := collector.Server(cfg.MetricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api server listening", logger.Fields{"addr": cfg.ListenAddr})
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server listening", logger.Fields{"addr": cfg.MetricsAddr})
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		_ = metricsServer.Shutdown(shutdownCtx)
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("shutdown complete", nil)
}
