package lifecycle

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("container already exists")
	ErrInvalidState       = errors.New("invalid state")
	ErrRuntimeUnavailable = errors.New("container runtime unavailable")
	ErrRuntime            = errors.New("container runtime error")
	ErrInterrupted        = errors.New("interrupted")
	ErrInvalidIdentity    = errors.New("invalid server identity")
)

// OperationError carries the failed operation, the state observed before it
// and the underlying cause.
type OperationError struct {
	Op    string
	State State
	Err   error
}

func (e *OperationError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s (state %s): %v", e.Op, e.State, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
