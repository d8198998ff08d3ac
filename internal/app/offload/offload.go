// Package offload runs blocking storage calls on a bounded set of worker
// goroutines so a slow query never stalls the request dispatch path.
//
// Every call is joined: Do returns only after the worker finished, and a
// worker that panics or exits without a result is reported as a
// *domain.InternalError with Op == domain.OpWorker instead of hanging the
// caller. Errors returned by the task itself pass through unchanged so the
// caller can classify them.
package offload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
)

// Worker failure causes, wrapped in a *domain.InternalError.
var (
	ErrPanicked  = errors.New("blocking task panicked")
	ErrAbandoned = errors.New("blocking task exited without a result")
)

// resultWorker labels tasks lost to a worker failure rather than fn's error.
const resultWorker = "worker_failure"

// Pool bounds the number of blocking tasks running at once.
type Pool struct {
	sem     chan struct{}
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Pool running at most maxWorkers tasks concurrently.
// maxWorkers below 1 is treated as 1. If metrics is nil, metric recording
// is skipped.
func New(maxWorkers int, metrics *telemetry.Metrics, logger *slog.Logger) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pool{
		sem:     make(chan struct{}, maxWorkers),
		metrics: metrics,
		logger:  logger,
	}
}

// Cap returns the maximum number of concurrent tasks.
func (p *Pool) Cap() int {
	return cap(p.sem)
}

type outcome[R any] struct {
	value R
	err   error
	// workerErr is set when the worker itself failed, as opposed to fn.
	workerErr error
}

// Do runs fn on a worker goroutine and waits for it to finish.
//
// If ctx is canceled while waiting for a free worker, fn is never called
// and a worker InternalError wrapping ctx.Err() is returned. Once started,
// fn receives a context detached from ctx's cancellation: an issued query
// runs to completion or failure and Do always joins it.
func Do[R any](ctx context.Context, p *Pool, op string, fn func(context.Context) (R, error)) (R, error) {
	var zero R
	start := time.Now()

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		p.record(ctx, op, start, resultWorker)
		return zero, domain.NewInternalError(domain.OpWorker,
			fmt.Errorf("waiting for %s worker: %w", op, ctx.Err()))
	}

	done := make(chan outcome[R], 1)
	taskCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() { <-p.sem }()

		finished := false
		defer func() {
			if v := recover(); v != nil {
				logging.FromContextOr(taskCtx, p.logger).ErrorContext(taskCtx, "blocking task panicked",
					slog.String("operation", op),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				done <- outcome[R]{workerErr: fmt.Errorf("%w: %v", ErrPanicked, v)}
				return
			}
			if !finished {
				done <- outcome[R]{workerErr: ErrAbandoned}
			}
		}()

		val, err := fn(taskCtx)
		finished = true
		done <- outcome[R]{value: val, err: err}
	}()

	out := <-done

	switch {
	case out.workerErr != nil:
		p.record(ctx, op, start, resultWorker)
		return zero, domain.NewInternalError(domain.OpWorker, fmt.Errorf("%s: %w", op, out.workerErr))
	case out.err != nil:
		p.record(ctx, op, start, telemetry.ResultError)
		return zero, out.err
	default:
		p.record(ctx, op, start, telemetry.ResultSuccess)
		return out.value, nil
	}
}

func (p *Pool) record(ctx context.Context, op string, start time.Time, result string) {
	p.metrics.RecordBlockingTask(ctx, op, result, time.Since(start))
}
