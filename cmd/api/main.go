package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httpserver "taskhub/internal/adapter/http"
	"taskhub/pkg/config"
	"taskhub/pkg/telemetry"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)

	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}

	defer logger.Sync()

	metrics := telemetry.NewAppMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpserver.StartServer(ctx, cfg, metrics, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}

	logger.Info("shut down gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
