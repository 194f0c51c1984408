package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// componentTimeout is the budget shared by all components on shutdown.
const componentTimeout = 5 * time.Second

// Shutdowner is a component that can be stopped.
type Shutdowner interface {
	Name() string
	Shutdown(ctx context.Context) error
}

// Notify subscribes to SIGINT and SIGTERM. Call it first thing in main so a
// Ctrl-C during startup is not lost.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

// Handler turns the first termination signal into a context cancellation.
type Handler struct {
	logger  *slog.Logger
	signals <-chan os.Signal
}

func New(logger *slog.Logger, signals <-chan os.Signal) *Handler {
	return &Handler{
		logger:  logger,
		signals: signals,
	}
}

// HandleSignals blocks until a signal arrives or ctx is done. Only a signal
// calls cancel.
func (h *Handler) HandleSignals(ctx context.Context, cancel func()) {
	select {
	case <-ctx.Done():
		h.logger.DebugContext(ctx, "signal handler stopped")
	case sig := <-h.signals:
		h.logger.InfoContext(ctx, "interrupted", "signal", sig.String())
		cancel()
	}
}

// GracefulShutdown stops components last-registered first. A failing
// component does not stop the rest; all failures are joined.
func GracefulShutdown(originCtx context.Context, logger *slog.Logger, shutdowners []Shutdowner) error {
	// the origin is usually already cancelled by the signal
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), componentTimeout)
	defer cancel()

	var errs []error

	for i := len(shutdowners) - 1; i >= 0; i-- {
		component := shutdowners[i]
		name := component.Name()
		log := logger.With("component", name)
		start := time.Now()

		if err := component.Shutdown(ctx); err != nil {
			log.ErrorContext(ctx, "shutdown failed", "took", time.Since(start), "reason", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))

			continue
		}

		log.InfoContext(ctx, "stopped", "took", time.Since(start))
	}

	return errors.Join(errs...)
}
