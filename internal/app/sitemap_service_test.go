package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/cratedocs-web/internal/app/offload"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
	"github.com/jsamuelsen11/cratedocs-web/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testPool() *offload.Pool {
	return offload.New(2, nil, nil)
}

// --- NewSitemapService ---

func TestNewSitemapService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewSitemapService(mocks.NewMockReleaseQuery(t), testPool(), nil)
	if svc.logger == nil {
		t.Fatal("NewSitemapService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Index ---

func TestSitemapService_Index(t *testing.T) {
	t.Parallel()

	// No expectations: the index must not touch storage.
	svc := NewSitemapService(mocks.NewMockReleaseQuery(t), testPool(), discardLogger())

	idx := svc.Index(context.Background())
	if len(idx.Shards) != sitemap.ShardCount {
		t.Fatalf("Index() shards = %d, want %d", len(idx.Shards), sitemap.ShardCount)
	}
	if idx.Shards[0].String() != "a" || idx.Shards[25].String() != "z" {
		t.Errorf("Index() = %v..%v, want a..z", idx.Shards[0], idx.Shards[25])
	}
}

// --- Shard ---

func TestSitemapService_Shard(t *testing.T) {
	t.Parallel()

	t.Run("invalid segment fails before any query", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "ab", "A", "1", "-", "é"} {
			query := mocks.NewMockReleaseQuery(t)
			svc := NewSitemapService(query, testPool(), discardLogger())

			_, err := svc.Shard(context.Background(), raw)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Shard(%q) error = %v, want ErrNotFound", raw, err)
			}
		}
	})

	t.Run("builds entries with date floor applied", func(t *testing.T) {
		t.Parallel()
		query := mocks.NewMockReleaseQuery(t)
		svc := NewSitemapService(query, testPool(), discardLogger())

		query.EXPECT().FetchReleases(mock.Anything, "s").Return([]sitemap.ReleaseRow{
			{
				PackageName:     "some_random_crate",
				TargetName:      "some_random_crate",
				LastReleaseTime: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				PackageName:     "serde",
				TargetName:      "serde",
				LastReleaseTime: time.Date(2024, 3, 5, 12, 30, 15, 0, time.UTC),
			},
		}, nil)

		doc, err := svc.Shard(context.Background(), "s")
		if err != nil {
			t.Fatalf("Shard() error = %v, want nil", err)
		}
		if doc.Shard.String() != "s" {
			t.Errorf("Shard() shard = %q, want %q", doc.Shard, "s")
		}
		if len(doc.Entries) != 2 {
			t.Fatalf("Shard() entries = %d, want 2", len(doc.Entries))
		}
		if got := doc.Entries[0].LastModified; got != "2022-08-28T00:00:00+00:00" {
			t.Errorf("Entries[0].LastModified = %q, want floor", got)
		}
		if got := doc.Entries[1].LastModified; got != "2024-03-05T12:30:15+00:00" {
			t.Errorf("Entries[1].LastModified = %q, want %q", got, "2024-03-05T12:30:15+00:00")
		}
	})

	t.Run("empty result is a valid empty document", func(t *testing.T) {
		t.Parallel()
		query := mocks.NewMockReleaseQuery(t)
		svc := NewSitemapService(query, testPool(), discardLogger())

		query.EXPECT().FetchReleases(mock.Anything, "q").Return(nil, nil)

		doc, err := svc.Shard(context.Background(), "q")
		if err != nil {
			t.Fatalf("Shard() error = %v, want nil", err)
		}
		if doc.Entries == nil || len(doc.Entries) > 0 {
			t.Errorf("Shard() entries = %#v, want empty non-nil slice", doc.Entries)
		}
	})

	t.Run("query failure becomes internal query error", func(t *testing.T) {
		t.Parallel()
		query := mocks.NewMockReleaseQuery(t)
		svc := NewSitemapService(query, testPool(), discardLogger())

		dbErr := errors.New("connection reset")
		query.EXPECT().FetchReleases(mock.Anything, "d").Return(nil, dbErr)

		_, err := svc.Shard(context.Background(), "d")
		if !errors.Is(err, domain.ErrInternal) {
			t.Errorf("Shard() error = %v, want ErrInternal", err)
		}
		if !domain.IsOp(err, domain.OpQuery) {
			t.Errorf("Shard() error op mismatch: %v, want query", err)
		}
		if !errors.Is(err, dbErr) {
			t.Errorf("Shard() error should still wrap cause %v", dbErr)
		}
	})

	t.Run("query panic becomes internal worker error", func(t *testing.T) {
		t.Parallel()
		query := mocks.NewMockReleaseQuery(t)
		svc := NewSitemapService(query, testPool(), discardLogger())

		query.EXPECT().FetchReleases(mock.Anything, "p").
			RunAndReturn(func(context.Context, string) ([]sitemap.ReleaseRow, error) {
				panic("driver bug")
			})

		_, err := svc.Shard(context.Background(), "p")
		if !domain.IsOp(err, domain.OpWorker) {
			t.Errorf("Shard() error = %v, want worker internal error", err)
		}
		if !errors.Is(err, offload.ErrPanicked) {
			t.Errorf("Shard() error should wrap ErrPanicked, got %v", err)
		}
	})
}
