package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/moby/term"
	"github.com/sourcegraph/conc"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// Result describes how a session ended. State is set only when the
// server process closed the stream.
type Result struct {
	Reason Reason
	State  lifecycle.State
}

// Session proxies the local terminal to the server console.
type Session struct {
	logger     *slog.Logger
	controller Controller
	terminal   Terminal
	keySpec    string
	detachKeys []byte
}

// New creates a console session. detachKeys uses Docker's key syntax,
// e.g. "ctrl-p,ctrl-q"; an empty value selects DefaultDetachKeys.
func New(
	logger *slog.Logger,
	controller Controller,
	terminal Terminal,
	detachKeys string,
) (*Session, error) {
	if detachKeys == "" {
		detachKeys = DefaultDetachKeys
	}

	keys, err := term.ToBytes(detachKeys)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDetachKeys, detachKeys, err)
	}

	return &Session{
		logger:     logger,
		controller: controller,
		terminal:   terminal,
		keySpec:    detachKeys,
		detachKeys: keys,
	}, nil
}

// DetachKeys returns the detach sequence in Docker's key syntax.
func (s *Session) DetachKeys() string {
	return s.keySpec
}

// Run attaches to the running server and forwards bytes both ways until
// the user detaches, ctx is canceled or the server closes the stream.
// The terminal mode is restored before Run returns.
func (s *Session) Run(ctx context.Context) (Result, error) {
	stream, err := s.controller.AttachCommand(ctx, s.keySpec)
	if err != nil {
		return Result{}, fmt.Errorf("console: %w", err)
	}

	s.logger.DebugContext(ctx, "console attached")

	reason, err := s.proxy(ctx, stream)
	if err != nil {
		return Result{Reason: reason}, err
	}

	result := Result{Reason: reason}

	if reason == ReasonRemoteClosed {
		state, err := s.controller.StatusQuery(ctx)
		if err != nil {
			return result, fmt.Errorf("console: status after remote close: %w", err)
		}

		result.State = state
	}

	s.logger.DebugContext(ctx, "console session ended", "reason", reason, "state", result.State)

	return result, nil
}

func (s *Session) proxy(ctx context.Context, stream lifecycle.Stream) (Reason, error) {
	defer stream.Close()

	input, err := s.terminal.Input()
	if err != nil {
		return "", fmt.Errorf("console input: %w", err)
	}
	defer input.Close()

	restore, err := s.terminal.MakeRaw()
	if err != nil {
		return "", fmt.Errorf("console raw mode: %w", err)
	}

	defer func() {
		if err := restore(); err != nil {
			s.logger.WarnContext(ctx, "failed to restore terminal", "error", err)
		}
	}()

	inputDone := make(chan error, 1)
	outputDone := make(chan error, 1)

	var wg conc.WaitGroup

	wg.Go(func() {
		forward(inputDone, serverWriter{stream}, term.NewEscapeProxy(input, s.detachKeys))
	})
	wg.Go(func() {
		forward(outputDone, s.terminal.Output(), stream)
	})

	var (
		reason  Reason
		loopErr error
	)

	select {
	case <-ctx.Done():
		reason = ReasonInterrupted
	case err := <-inputDone:
		reason, loopErr = inputEnded(err, outputDone)
	case err := <-outputDone:
		reason, loopErr = outputEnded(err)
	}

	input.Cancel()
	_ = stream.Close()

	if recovered := wg.WaitAndRecover(); recovered != nil {
		loopErr = errors.Join(loopErr, fmt.Errorf("%w: %w", ErrStream, recovered.AsError()))
	}

	return reason, loopErr
}

// inputEnded classifies the end of the input loop. A write the server
// refused usually means it exited, so the output side gets a short grace
// period to report the close.
func inputEnded(err error, outputDone <-chan error) (Reason, error) {
	var escape term.EscapeError

	switch {
	case err == nil || errors.As(err, &escape):
		return ReasonDetached, nil
	case errors.Is(err, errServerWrite):
		select {
		case outErr := <-outputDone:
			return outputEnded(outErr)
		case <-time.After(remoteCloseGrace):
		}
	}

	return ReasonDetached, fmt.Errorf("%w: input: %w", ErrStream, err)
}

func outputEnded(err error) (Reason, error) {
	if err != nil {
		return ReasonRemoteClosed, fmt.Errorf("%w: output: %w", ErrStream, err)
	}

	return ReasonRemoteClosed, nil
}

// serverWriter tags write failures so they are not mistaken for local
// input errors.
type serverWriter struct {
	w io.Writer
}

func (s serverWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", errServerWrite, err)
	}

	return n, nil
}

// forward copies src to dst and reports the outcome on done, also when
// the copy panics.
func forward(done chan<- error, dst io.Writer, src io.Reader) {
	err := errCopyAborted

	defer func() {
		done <- err
	}()

	_, err = io.Copy(dst, src)
}
