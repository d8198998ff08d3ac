package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/cratedocs-web/internal/platform/config"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
)

func testBreaker() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{MaxFailures: 2, Timeout: time.Minute, HalfOpenLimit: 1}
}

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	store, err := NewWithPool(mock, testBreaker(), nil)
	require.NoError(t, err)
	return store, mock
}

func TestNewWithPool_RequiresPool(t *testing.T) {
	t.Parallel()

	_, err := NewWithPool(nil, testBreaker(), nil)
	if err == nil {
		t.Fatal("NewWithPool(nil) error = nil, want error")
	}
}

func TestNew_RequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &config.DatabaseConfig{}, nil)
	if err == nil {
		t.Fatal("New() with empty DSN error = nil, want error")
	}
}

func TestLikePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "s", want: "s%"},
		{in: "a_b", want: `a\_b%`},
		{in: "100%", want: `100\%%`},
		{in: `x\y`, want: `x\\y%`},
	}
	for _, tt := range tests {
		if got := likePrefix(tt.in); got != tt.want {
			t.Errorf("likePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchReleases_ScansRows(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT crates.name, releases.target_name").
		WithArgs("s%").
		WillReturnRows(pgxmock.NewRows([]string{"name", "target_name", "release_time"}).
			AddRow("serde", "serde", newer).
			AddRow("some_random_crate", "some_random_crate", older))

	rows, err := store.FetchReleases(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "serde", rows[0].PackageName)
	require.Equal(t, "serde", rows[0].TargetName)
	require.True(t, rows[0].LastReleaseTime.Equal(newer))
	require.True(t, rows[1].LastReleaseTime.Equal(older))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchReleases_Empty(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT crates.name").
		WithArgs("x%").
		WillReturnRows(pgxmock.NewRows([]string{"name", "target_name", "release_time"}))

	rows, err := store.FetchReleases(context.Background(), "x")
	require.NoError(t, err)
	require.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchReleases_QueryError(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	dbErr := errors.New("connection reset by peer")
	mock.ExpectQuery("SELECT crates.name").WithArgs("d%").WillReturnError(dbErr)

	_, err := store.FetchReleases(context.Background(), "d")
	require.ErrorIs(t, err, dbErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchReleases_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	dbErr := errors.New("too many connections")
	mock.ExpectQuery("SELECT crates.name").WithArgs("a%").WillReturnError(dbErr)
	mock.ExpectQuery("SELECT crates.name").WithArgs("a%").WillReturnError(dbErr)

	for range 2 {
		_, err := store.FetchReleases(context.Background(), "a")
		require.ErrorIs(t, err, dbErr)
	}

	// Third call is rejected without reaching the pool.
	_, err := store.FetchReleases(context.Background(), "a")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Error(t, store.HealthCheck(context.Background()))
}

func TestGetConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes json string", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT value FROM config").
			WithArgs("rustc_version").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).
				AddRow([]byte(`"rustc 1.80.0-nightly (a1b2c3d4e 2024-05-01)"`)))

		value, ok, err := store.GetConfig(context.Background(), "rustc_version")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "rustc 1.80.0-nightly (a1b2c3d4e 2024-05-01)", value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT value FROM config").
			WithArgs("rustc_version").
			WillReturnRows(pgxmock.NewRows([]string{"value"}))

		value, ok, err := store.GetConfig(context.Background(), "rustc_version")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-string value fails", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT value FROM config").
			WithArgs("rustc_version").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`42`)))

		_, ok, err := store.GetConfig(context.Background(), "rustc_version")
		require.Error(t, err)
		require.False(t, ok)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		dbErr := errors.New("relation \"config\" does not exist")
		mock.ExpectQuery("SELECT value FROM config").
			WithArgs("rustc_version").
			WillReturnError(dbErr)

		_, _, err := store.GetConfig(context.Background(), "rustc_version")
		require.ErrorIs(t, err, dbErr)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		mock.ExpectPing()

		require.NoError(t, store.HealthCheck(context.Background()))
		require.Equal(t, "postgres", store.Name())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping failure", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))

		require.Error(t, store.HealthCheck(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExecute_RecordsStatementDuration(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	require.NoError(t, err)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	store, err := NewWithPool(mock, testBreaker(), nil, WithMetrics(metrics))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value FROM config").
		WithArgs("rustc_version").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`"rustc 1.80.0"`)))

	_, _, err = store.GetConfig(context.Background(), "rustc_version")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var count uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == "db.client.operation.duration" {
				for _, dp := range hist.DataPoints {
					count += dp.Count
				}
			}
		}
	}
	require.Equal(t, uint64(1), count)
}
