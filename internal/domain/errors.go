package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Op names the stage of request handling that failed with an InternalError.
type Op string

// Operations that can surface as InternalError.
const (
	// OpQuery is a failure reported by a storage collaborator.
	OpQuery Op = "query"
	// OpWorker is a failure to schedule or join an offloaded blocking task.
	OpWorker Op = "worker"
	// OpConfig is a failure reading a named configuration value.
	OpConfig Op = "config"
)

// InternalError wraps a collaborator failure so that callers can distinguish
// which stage broke without inspecting collaborator-specific error types.
// errors.Is(err, ErrInternal) always holds; errors.Is against the wrapped
// cause works too, which keeps the full chain available for logging.
type InternalError struct {
	Op  Op
	Err error
}

// NewInternalError wraps err as an InternalError for the given operation.
func NewInternalError(op Op, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrInternal.Error(), e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrInternal.Error(), e.Op, e.Err)
}

func (e *InternalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInternal}
	}
	return []error{ErrInternal, e.Err}
}

// IsOp reports whether err is an InternalError raised by the given operation.
func IsOp(err error, op Op) bool {
	var ierr *InternalError
	return errors.As(err, &ierr) && ierr.Op == op
}
