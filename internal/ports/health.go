package ports

import "context"

// HealthChecker is a dependency the readiness probe waits on, such as the
// release store.
type HealthChecker interface {
	// Name keys the checker's result, e.g. "postgres".
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's result keyed by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
