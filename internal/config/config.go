package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr         string
	MetricsAddr        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	MiniStatementLimit int
}

func Load() Config {
	v := viper.New()

	v.SetConfigFile(".env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("ledger.mini_statement_limit", 20)

	_ = v.BindEnv("server.addr", "SERVER_ADDR")
	_ = v.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	_ = v.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	_ = v.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("metrics.addr", "METRICS_ADDR")
	_ = v.BindEnv("ledger.mini_statement_limit", "LEDGER_MINI_STATEMENT_LIMIT")

	return Config{
		ListenAddr:         v.GetString("server.addr"),
		MetricsAddr:        v.GetString("metrics.addr"),
		ReadTimeout:        v.GetDuration("server.read_timeout"),
		WriteTimeout:       v.GetDuration("server.write_timeout"),
		ShutdownTimeout:    v.GetDuration("server.shutdown_timeout"),
		MiniStatementLimit: v.GetInt("ledger.mini_statement_limit"),
	}
}
