package appstate

import "errors"

var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrAlreadyTerminated      = errors.New("already terminated")

	// ErrNotRunning fails readiness outside the running phase.
	ErrNotRunning = errors.New("not running")
)
