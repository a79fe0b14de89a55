package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensorlist/internal/app/server/api"
	"sensorlist/internal/app/server/config"
	"sensorlist/internal/infrastructure/migration"
	"sensorlist/internal/infrastructure/storage"
	"sensorlist/internal/utils/logger"

	"golang.org/x/exp/slog"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	schema, err := conf.Schema()
	if err != nil {
		return err
	}

	if conf.DB.Migrations != "" {
		log.Info("applying migrations", slog.String("path", conf.DB.Migrations))
		if err := migration.NewMigration(conf.DB.Migrations, conf.DB.DatabaseURI, nil).Up(); err != nil {
			return err
		}
	}

	store, err := storage.Open(ctx, storage.Config{
		DSN:            conf.DB.DatabaseURI,
		MaxConns:       conf.DB.MaxConns,
		AcquireTimeout: conf.DB.AcquireTimeout,
	}, schema, log)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(store, schema, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			slog.String("env", conf.Env),
			slog.String("address", conf.Server.RunAddress),
			slog.String("table", schema.Table),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", conf.Server.ShutdownTimeout))
	shutdownCtx, stop := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer stop()

	return srv.Shutdown(shutdownCtx)
}
