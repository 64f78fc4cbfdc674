package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mealflow/pkg/api"
	"mealflow/pkg/config"
	"mealflow/pkg/logger"
	"mealflow/pkg/meal"
	"mealflow/pkg/meal/memory"
	"mealflow/pkg/otel"
)

// @title Mealflow API
// @version 1.0
// @description Meal catalogue with hypermedia and RPC-style endpoints and order pricing
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(os.Stderr, logger.LevelInfo, "mealflow", nil)
		log.Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), cfg.ServiceName, otel.GetTraceID)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTEL.Host,
		Probability: cfg.OTEL.Probability,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error(ctx, "shutdown tracing", "error", err)
		}
	}()

	meals := memory.New(meal.Seed()...)
	log.Info(ctx, "meal store seeded", "meals", len(meal.Seed()))

	handler := api.New(meals, log, cfg.ServiceName)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(handler, tp.Tracer(cfg.ServiceName), cfg.CORSOrigins),
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "tls", cfg.TLS())
		if cfg.TLS() {
			srvErr <- server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stopCtx.Done():
		log.Info(ctx, "shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(ctx, "server shutdown", "error", err)
	}
	log.Info(ctx, "server stopped")
	return nil
}
