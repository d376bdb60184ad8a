// Package main is the entry point for the trip builder API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-builder/internal/app"
	"github.com/pkordes/trip-builder/internal/client"
	"github.com/pkordes/trip-builder/internal/config"
	"github.com/pkordes/trip-builder/internal/handler"
	"github.com/pkordes/trip-builder/internal/middleware"
	"github.com/pkordes/trip-builder/internal/telemetry"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Draft storage and
// tracing are released before it returns, whichever way it returns.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// --- Tracing ----------------------------------------------------------
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracing shutdown error", "error", err)
		}
	}()
	if cfg.OTLPEndpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.OTLPEndpoint, "service", cfg.ServiceName)
	}

	// --- Drafts -----------------------------------------------------------
	drafts, closeDrafts, err := app.OpenDrafts(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s draft storage: %w", cfg.DraftBackend, err)
	}
	defer closeDrafts()
	logger.Info("draft storage ready", "backend", cfg.DraftBackend)

	// --- Services ---------------------------------------------------------
	remote := client.New(cfg.APIBaseURL, cfg.APITimeout)
	svc := app.NewServices(drafts, remote, cfg.DefaultTheme, logger)

	// --- Router -----------------------------------------------------------
	// Trace runs before the logger so the span covers the whole request;
	// Recoverer sits inside both so a panic is still logged as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", handler.NewServer(svc.Handler(), logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for a remote call that uses its full APITimeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.APITimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	// In-flight requests get up to 15 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}
