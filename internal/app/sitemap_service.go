// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/cratedocs-web/internal/app/offload"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// Compile-time check that SitemapService implements ports.SitemapService.
var _ ports.SitemapService = (*SitemapService)(nil)

// SitemapService implements ports.SitemapService. It validates the shard
// segment, runs the release query on the offload pool and hands the rows to
// the domain document builder. It holds no mutable state.
type SitemapService struct {
	releases ports.ReleaseQuery
	pool     *offload.Pool
	logger   *slog.Logger
}

// NewSitemapService creates a SitemapService. A nil logger discards output.
func NewSitemapService(releases ports.ReleaseQuery, pool *offload.Pool, logger *slog.Logger) *SitemapService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SitemapService{
		releases: releases,
		pool:     pool,
		logger:   logger,
	}
}

// Index returns the sitemap index listing every shard.
func (s *SitemapService) Index(_ context.Context) sitemap.Index {
	return sitemap.BuildIndex()
}

// Shard returns the sitemap document for the shard named by raw.
func (s *SitemapService) Shard(ctx context.Context, raw string) (sitemap.Document, error) {
	key, err := sitemap.ParseShardKey(raw)
	if err != nil {
		s.log(ctx).DebugContext(ctx, "rejected sitemap shard", slog.String("shard", raw))
		return sitemap.Document{}, err
	}

	rows, err := offload.Do(ctx, s.pool, "fetch_releases",
		func(taskCtx context.Context) ([]sitemap.ReleaseRow, error) {
			return s.releases.FetchReleases(taskCtx, key.String())
		})
	if err != nil {
		if !errors.Is(err, domain.ErrInternal) {
			err = domain.NewInternalError(domain.OpQuery, err)
		}
		s.log(ctx).ErrorContext(ctx, "failed to fetch releases",
			slog.String("operation", "Shard"),
			slog.String("shard", key.String()),
			slog.Any("error", err),
		)
		return sitemap.Document{}, err
	}

	doc := sitemap.BuildDocument(key, rows)
	s.log(ctx).DebugContext(ctx, "built sitemap shard",
		slog.String("shard", key.String()),
		slog.Int("entries", len(doc.Entries)),
	)
	return doc, nil
}

// log returns the request-scoped logger when the inbound middleware stored
// one, so entries carry the request and correlation IDs.
func (s *SitemapService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
