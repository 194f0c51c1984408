package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/moby/term"
	"github.com/muesli/cancelreader"
)

// Terminal is the local end of a console session.
type Terminal struct {
	in  *os.File
	out io.Writer
}

func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:  in,
		out: out,
	}
}

// IsTerminal reports whether input is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	_, isTerm := term.GetFdInfo(t.in)

	return isTerm
}

// MakeRaw puts the input terminal into raw mode. The returned restore
// function is safe to call more than once.
func (t *Terminal) MakeRaw() (func() error, error) {
	fd, isTerm := term.GetFdInfo(t.in)
	if !isTerm {
		return func() error { return nil }, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("make raw terminal: %w", err)
	}

	var (
		once       sync.Once
		restoreErr error
	)

	return func() error {
		once.Do(func() {
			restoreErr = term.RestoreTerminal(fd, state)
		})

		return restoreErr
	}, nil
}

// Input returns a reader over the terminal input whose blocked reads can be
// canceled when the session ends.
func (t *Terminal) Input() (cancelreader.CancelReader, error) {
	reader, err := cancelreader.NewReader(t.in)
	if err != nil {
		return nil, fmt.Errorf("terminal input: %w", err)
	}

	return reader, nil
}

func (t *Terminal) Output() io.Writer {
	return t.out
}
