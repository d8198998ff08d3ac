// Package logging builds the service's slog logger and carries the
// request-scoped logger through contexts.
//
// The HTTP logging middleware stores a logger tagged with request_id and
// correlation_id; services pick it up with FromContextOr and fall back to
// the logger they were constructed with:
//
//	log := logging.FromContextOr(ctx, s.logger)
//	log.ErrorContext(ctx, "failed to fetch releases",
//	    slog.String("operation", "Shard"),
//	    slog.String("shard", key.String()),
//	    slog.Any("error", err),
//	)
//
// Error entries name the operation, the identifiers involved and the full
// error chain.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/cratedocs-web/internal/platform/config"
)

const formatText = "text"

type contextKey struct{}

// New returns a logger writing cfg.Format ("json" or "text") to w at
// cfg.Level. Credentials are masked before any handler sees them. Debug
// output includes the source location.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if cfg.Format == formatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel reads a level name such as "debug" or "WARN". Anything slog
// does not recognize is treated as info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
