package ports

import (
	"context"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
)

// SitemapService defines the service port for sitemap documents.
// Implemented by the application layer; called by inbound adapters (handlers).
type SitemapService interface {
	// Index returns the sitemap index. It never touches storage.
	Index(ctx context.Context) sitemap.Index

	// Shard validates the raw shard segment and returns its document.
	// Returns domain.ErrNotFound for an invalid segment (before any I/O)
	// and a *domain.InternalError when the release query or its worker fails.
	Shard(ctx context.Context, raw string) (sitemap.Document, error)
}

// AboutService defines the service port for the informational pages.
type AboutService interface {
	// Page resolves an about page by name.
	// Returns an *about.NotFoundError (wrapping domain.ErrNotFound) for
	// unknown names.
	Page(ctx context.Context, name string) (about.Page, error)

	// Builds returns the builds page content: the current compiler version,
	// when recorded, and the default build limits.
	// Returns a *domain.InternalError when the configuration lookup fails.
	Builds(ctx context.Context) (about.Builds, error)
}
