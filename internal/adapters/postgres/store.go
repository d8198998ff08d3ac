// Package postgres implements the release and configuration ports on top of
// the documentation database through a pgx connection pool.
//
// Every query runs behind a circuit breaker so a failing database is shed
// quickly instead of tying up the blocking worker pool:
//
//	Circuit Breaker → OTEL Span → pgx pool
//
// Construction:
//
//	store, err := postgres.New(ctx, &cfg.Database, logger, postgres.WithMetrics(metrics))
//	defer store.Close()
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/cratedocs-web/internal/platform/config"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// Compile-time checks that Store satisfies the ports it backs.
var (
	_ ports.ReleaseQuery  = (*Store)(nil)
	_ ports.ConfigStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const checkerName = "postgres"

// querier is the subset of *pgxpool.Pool used by the store. pgxmock pools
// satisfy it as well.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store reads release aggregates and site configuration from Postgres.
type Store struct {
	pool    querier
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics records statement durations on metrics.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(s *Store) {
		s.metrics = metrics
	}
}

// New connects a pgx pool using cfg and returns a Store over it.
func New(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger, opts ...Option) (*Store, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database.dsn is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return NewWithPool(pool, cfg.CircuitBreaker, logger, opts...)
}

// NewWithPool builds a Store over an existing pool. Used by tests with a
// pgxmock pool.
func NewWithPool(pool querier, cb config.CircuitBreakerConfig, logger *slog.Logger, opts ...Option) (*Store, error) {
	if pool == nil {
		return nil, errors.New("pool is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cb.MaxFailures > 0 && int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	s := &Store{pool: pool, breaker: breaker, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck fails fast while the circuit breaker is open and otherwise
// pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	case gobreaker.StateClosed, gobreaker.StateHalfOpen:
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", checkerName, err)
	}
	return nil
}

// execute runs fn behind the breaker inside a client span named after the
// statement. Calls rejected by an open breaker are timed too.
func (s *Store) execute(ctx context.Context, statement string, fn func(context.Context) error) error {
	start := time.Now()
	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := otel.GetTracerProvider().Tracer("postgres").Start(ctx, statement,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "postgresql"),
				attribute.String("db.operation", statement),
			),
		)
		defer span.End()

		err := fn(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})
	s.metrics.RecordDBQuery(ctx, statement, err, time.Since(start))
	return err
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
