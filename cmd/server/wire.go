package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/cratedocs-web/internal/adapters/http"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/memory"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/postgres"
	"github.com/jsamuelsen11/cratedocs-web/internal/app"
	"github.com/jsamuelsen11/cratedocs-web/internal/app/offload"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/config"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/health"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// storage backs every storage port with one store.
type storage interface {
	ports.ReleaseQuery
	ports.ConfigStore
	ports.HealthChecker
	Close()
}

// memoryStorage adapts the in-memory store, which holds nothing to release.
type memoryStorage struct {
	*memory.Store
}

func (memoryStorage) Close() {}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (storage, error) {
		if cfg.Database.DSN == "" {
			logger.Warn("no database configured, serving from the in-memory store")
			return memoryStorage{memory.New()}, nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		store, err := postgres.New(ctx, &cfg.Database, logger, postgres.WithMetrics(metrics))
		if err != nil {
			return nil, err
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (*offload.Pool, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return offload.New(cfg.Worker.MaxBlocking, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SitemapService, error) {
		store := do.MustInvoke[storage](i)
		pool := do.MustInvoke[*offload.Pool](i)
		return app.NewSitemapService(store, pool, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AboutService, error) {
		store := do.MustInvoke[storage](i)
		pool := do.MustInvoke[*offload.Pool](i)
		return app.NewAboutService(store, pool, logger,
			app.WithLimits(buildLimits(cfg.Builds.Limits)),
			app.WithSourceURL(cfg.Site.AboutSourceURL),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithTimeout(cfg.Health.Timeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SitemapHandler, error) {
		return handlers.NewSitemapHandler(do.MustInvoke[ports.SitemapService](i), cfg.Site.BaseURL), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AboutHandler, error) {
		return handlers.NewAboutHandler(do.MustInvoke[ports.AboutService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.SitemapHandler](i),
			do.MustInvoke[*handlers.AboutHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

func buildLimits(c config.LimitsConfig) about.Limits {
	return about.Limits{
		Memory:     c.Memory,
		Timeout:    c.Timeout,
		Targets:    c.Targets,
		Networking: c.Networking,
		MaxLogSize: c.MaxLogSize,
	}
}
