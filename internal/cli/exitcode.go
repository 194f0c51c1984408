package cli

import (
	"context"
	"errors"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// Process exit codes.
const (
	ExitOK                 = 0
	ExitError              = 1
	ExitAlreadyExists      = 3
	ExitInvalidState       = 4
	ExitRuntimeUnavailable = 5
	ExitRuntime            = 6
	ExitInterrupted        = 130
)

// ExitCode maps an error to the process exit code. Interruption wins over
// the cause it interrupted.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lifecycle.ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, lifecycle.ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, lifecycle.ErrInvalidState):
		return ExitInvalidState
	case errors.Is(err, lifecycle.ErrRuntimeUnavailable):
		return ExitRuntimeUnavailable
	case errors.Is(err, lifecycle.ErrRuntime):
		return ExitRuntime
	default:
		return ExitError
	}
}
