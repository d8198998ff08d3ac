package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/cratedocs-web/internal/app/offload"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// Compile-time check that AboutService implements ports.AboutService.
var _ ports.AboutService = (*AboutService)(nil)

// AboutService implements ports.AboutService.
type AboutService struct {
	config    ports.ConfigStore
	pool      *offload.Pool
	limits    about.Limits
	sourceURL string
	logger    *slog.Logger
}

// AboutOption configures an AboutService.
type AboutOption func(*AboutService)

// WithLimits overrides the build limits shown on the builds page.
func WithLimits(limits about.Limits) AboutOption {
	return func(s *AboutService) { s.limits = limits }
}

// WithSourceURL overrides the contribution link shown for unknown pages.
func WithSourceURL(url string) AboutOption {
	return func(s *AboutService) {
		if url != "" {
			s.sourceURL = url
		}
	}
}

// NewAboutService creates an AboutService reading site configuration from
// store. Limits default to about.DefaultLimits and the contribution link to
// about.DefaultSourceURL.
func NewAboutService(store ports.ConfigStore, pool *offload.Pool, logger *slog.Logger, opts ...AboutOption) *AboutService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &AboutService{
		config:    store,
		pool:      pool,
		limits:    about.DefaultLimits(),
		sourceURL: about.DefaultSourceURL,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page resolves an about page by name.
func (s *AboutService) Page(ctx context.Context, name string) (about.Page, error) {
	page, err := about.Resolve(name)
	if err != nil {
		var nf *about.NotFoundError
		if errors.As(err, &nf) {
			nf.SourceURL = s.sourceURL
		}
		s.log(ctx).DebugContext(ctx, "unknown about page", slog.String("page", name))
		return about.Page{}, err
	}
	return page, nil
}

// Builds returns the builds page content.
func (s *AboutService) Builds(ctx context.Context) (about.Builds, error) {
	version, err := offload.Do(ctx, s.pool, "get_config",
		func(taskCtx context.Context) (*string, error) {
			v, ok, err := s.config.GetConfig(taskCtx, about.ConfigRustcVersion)
			if err != nil || !ok {
				return nil, err
			}
			return &v, nil
		})
	if err != nil {
		if !errors.Is(err, domain.ErrInternal) {
			err = domain.NewInternalError(domain.OpConfig, err)
		}
		s.log(ctx).ErrorContext(ctx, "failed to read build configuration",
			slog.String("operation", "Builds"),
			slog.String("name", about.ConfigRustcVersion),
			slog.Any("error", err),
		)
		return about.Builds{}, err
	}

	return about.NewBuilds(version, s.limits), nil
}

func (s *AboutService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
