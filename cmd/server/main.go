// Command server serves the documentation site's sitemaps and about pages.
//
// It loads the profile named by APP_PROFILE, wires dependencies with
// samber/do v2, and drains in-flight requests on SIGINT/SIGTERM before
// closing the database pool and flushing telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/cratedocs-web/internal/adapters/http"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/config"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the whole graph, including the database pool.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[storage](injector)
	defer store.Close()
	do.MustInvoke[ports.HealthRegistry](injector).Register(store)

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("service configured",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.String("store", store.Name()),
		slog.String("base_url", cfg.Site.BaseURL),
		slog.Int("max_blocking", cfg.Worker.MaxBlocking),
		slog.Bool("telemetry", otel.Enabled()),
	)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-sigCtx.Done():
		logger.Info("received shutdown signal", slog.Any("cause", context.Cause(sigCtx)))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
