package ports

import (
	"context"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
)

// ReleaseQuery defines the client port for the release aggregation query.
// Implemented by storage adapters; called by the application layer.
type ReleaseQuery interface {
	// FetchReleases returns one row per (package, build target) for packages
	// whose name starts with prefix, compared case-insensitively, and that
	// have a successful documentation build. Each row carries the newest
	// release time of the pair. Packages without any release are omitted.
	// The call may block on I/O; callers run it through the offloader.
	FetchReleases(ctx context.Context, prefix string) ([]sitemap.ReleaseRow, error)
}

// ConfigStore defines the client port for named site configuration values
// persisted alongside the release data.
type ConfigStore interface {
	// GetConfig returns the value stored under name. ok is false when no
	// value has been recorded; err is reserved for lookup failures.
	GetConfig(ctx context.Context, name string) (value string, ok bool, err error)
}
