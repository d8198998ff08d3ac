// Package memory implements the release and configuration ports over
// in-process data. It backs the local profile, where no database is
// configured, and end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// Compile-time checks that Store satisfies the ports it backs.
var (
	_ ports.ReleaseQuery  = (*Store)(nil)
	_ ports.ConfigStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Release is one published version of a package for one build target.
type Release struct {
	PackageName string
	TargetName  string
	ReleaseTime time.Time
	// DocsBuilt reports whether documentation was built successfully.
	DocsBuilt bool
}

// Store holds releases and configuration values. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	releases []Release
	config   map[string]string
}

// New creates a Store seeded with releases.
func New(releases ...Release) *Store {
	return &Store{
		releases: slices.Clone(releases),
		config:   make(map[string]string),
	}
}

// AddRelease records a release.
func (s *Store) AddRelease(r Release) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases = append(s.releases, r)
}

// SetConfig stores a configuration value under name.
func (s *Store) SetConfig(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config[name] = value
}

// FetchReleases implements ports.ReleaseQuery with the same semantics as the
// SQL store: case-insensitive prefix match, built documentation only, one
// row per (package, target) with the newest release time, ordered by
// package then target.
func (s *Store) FetchReleases(ctx context.Context, prefix string) ([]sitemap.ReleaseRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix = strings.ToLower(prefix)

	s.mu.RLock()
	rows := make([]sitemap.ReleaseRow, 0, len(s.releases))
	for _, r := range s.releases {
		if !r.DocsBuilt || !strings.HasPrefix(strings.ToLower(r.PackageName), prefix) {
			continue
		}
		rows = append(rows, sitemap.ReleaseRow{
			PackageName:     r.PackageName,
			TargetName:      r.TargetName,
			LastReleaseTime: r.ReleaseTime,
		})
	}
	s.mu.RUnlock()

	rows = sitemap.Aggregate(rows)
	slices.SortFunc(rows, func(a, b sitemap.ReleaseRow) int {
		return cmp.Or(
			cmp.Compare(a.PackageName, b.PackageName),
			cmp.Compare(a.TargetName, b.TargetName),
		)
	})
	return rows, nil
}

// GetConfig implements ports.ConfigStore.
func (s *Store) GetConfig(ctx context.Context, name string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.config[name]
	return v, ok, nil
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "memory"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}
