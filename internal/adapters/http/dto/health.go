package dto

import (
	"context"
	"errors"
	"maps"
	"slices"
)

// Readiness check states reported per dependency.
const (
	CheckPassing  = "passing"
	CheckFailing  = "failing"
	CheckTimedOut = "timed_out"

	ReadinessReady    = "ready"
	ReadinessNotReady = "not_ready"
)

// Liveness is the body of GET /health/live.
type Liveness struct {
	Status string `json:"status"`
}

// Readiness is the body of GET /health/ready. Check errors are reduced to a
// state so connection strings and driver messages stay in the logs.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Failed []string          `json:"failed,omitempty"`
}

// NewReadiness summarizes health check results. Failed names are sorted.
func NewReadiness(results map[string]error) Readiness {
	out := Readiness{
		Status: ReadinessReady,
		Checks: make(map[string]string, len(results)),
	}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		err := results[name]
		switch {
		case err == nil:
			out.Checks[name] = CheckPassing
			continue
		case errors.Is(err, context.DeadlineExceeded):
			out.Checks[name] = CheckTimedOut
		default:
			out.Checks[name] = CheckFailing
		}
		out.Failed = append(out.Failed, name)
	}
	if len(out.Failed) > 0 {
		out.Status = ReadinessNotReady
	}
	return out
}

// Ready reports whether every check passed.
func (r Readiness) Ready() bool {
	return len(r.Failed) == 0
}
