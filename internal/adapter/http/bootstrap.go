package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/adapter/database/postgres"
	pgrepo "taskhub/internal/adapter/database/postgres/repository"
	"taskhub/internal/adapter/database/sqlite"
	sqliterepo "taskhub/internal/adapter/database/sqlite/repository"
	"taskhub/pkg/auth"
	"taskhub/pkg/config"
	"taskhub/pkg/telemetry"
)

// StartServer opens the configured store, wires the container and serves
// until the listener fails or the process is told to stop.
func StartServer(ctx context.Context, cfg *config.Config, metrics *telemetry.AppMetrics, logger *zap.Logger) error {
	container, closeStore, err := buildContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router := SetupRouter(container, cfg, metrics, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("driver", cfg.DatabaseDriver),
		zap.String("environment", cfg.Environment),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func buildContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	tokens := auth.NewJWT(cfg.JWTSecret)

	if cfg.DatabaseDriver == "postgres" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		container := NewContainer(pgrepo.NewUserRepository(db), pgrepo.NewTaskRepository(db), tokens)
		return container, db.Close, nil
	}

	db := sqlite.New(cfg.SQLitePath)
	container := NewContainer(sqliterepo.NewUserRepository(db), sqliterepo.NewTaskRepository(db), tokens)

	return container, func() { db.Close() }, nil
}
