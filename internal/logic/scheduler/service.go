package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/infra/metrics"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

var ErrNotStarted = errors.New("restart scheduler is not running")

// Service restarts a running server on a cron schedule.
// A server that is not running at the scheduled time is left alone.
type Service struct {
	logger     *slog.Logger
	restarter  Restarter
	schedule   Schedule
	server     string
	spec       string
	tz         string
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	mu         sync.RWMutex
	nextRun    time.Time
}

// New creates a new restart scheduler for the named server.
func New(
	logger *slog.Logger,
	restarter Restarter,
	schedule Schedule,
	server,
	spec,
	tz string,
) *Service {
	return &Service{
		logger:    logger.With("component", "scheduler", "schedule", spec),
		restarter: restarter,
		schedule:  schedule,
		server:    server,
		spec:      spec,
		tz:        tz,
		now:       time.Now,
		ready:     make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start validates the schedule and runs the loop until ctx is done.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "restart scheduler is shutting down, skipping start")

		return nil
	}

	if _, err := s.schedule.NextAfter(s.spec, s.tz, s.now()); err != nil {
		return fmt.Errorf("restart schedule: %w", err)
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the server component
func (s *Service) Name() string {
	return "restart-scheduler"
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return ErrNotStarted
	}
}

// NextRun returns the next scheduled restart, zero before the loop starts.
func (s *Service) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextRun
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "restart scheduler is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down restart scheduler")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before scheduler loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "restart scheduler loop exited")
	}

	return nil
}

// RestartCommand performs one scheduled restart.
func (s *Service) RestartCommand(ctx context.Context) error {
	state, err := s.restarter.StatusQuery(ctx)
	if err != nil {
		metrics.RecordScheduledRestart(s.server, metrics.OutcomeFailed)

		return fmt.Errorf("scheduled restart: %w", err)
	}

	if state != lifecycle.StateRunning {
		s.logger.InfoContext(ctx, "server not running, skipping scheduled restart", "state", state)
		metrics.RecordScheduledRestart(s.server, metrics.OutcomeSkipped)

		return nil
	}

	if _, err := s.restarter.RestartCommand(ctx); err != nil {
		metrics.RecordScheduledRestart(s.server, metrics.OutcomeFailed)

		return fmt.Errorf("scheduled restart: %w", err)
	}

	s.logger.InfoContext(ctx, "server restarted on schedule")
	metrics.RecordScheduledRestart(s.server, metrics.OutcomeRestarted)

	return nil
}

// RunCommand sleeps until each cron occurrence and restarts the server.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	close(s.ready)

	for {
		next, err := s.schedule.NextAfter(s.spec, s.tz, s.now())
		if err != nil {
			s.logger.ErrorContext(ctx, "cannot compute next restart, stopping scheduler", "reason", err)

			return
		}

		s.setNextRun(next)
		s.logger.DebugContext(ctx, "next scheduled restart", "at", next)

		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.InfoContext(ctx, "terminating restart scheduler loop")

			return
		case <-timer.C:
		}

		if err := s.RestartCommand(ctx); err != nil {
			s.logger.ErrorContext(ctx, "scheduled restart failed", "reason", err)
		}
	}
}

func (s *Service) setNextRun(next time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRun = next
}
