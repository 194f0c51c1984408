package console

import (
	"context"
	"io"

	"github.com/muesli/cancelreader"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// Controller is the slice of the lifecycle service a console session needs.
type Controller interface {
	AttachCommand(ctx context.Context, detachKeys string) (lifecycle.Stream, error)
	StatusQuery(ctx context.Context) (lifecycle.State, error)
}

// Terminal is the local side of a console session.
type Terminal interface {
	// MakeRaw switches the terminal to raw mode and returns a function
	// restoring the previous mode. It is a no-op when input is not a terminal.
	MakeRaw() (restore func() error, err error)
	Input() (cancelreader.CancelReader, error)
	Output() io.Writer
}
