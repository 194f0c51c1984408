package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
)

// State is the phase of the serve process, reported by /-/status.
type State string

const (
	StateInit        State = "init"
	StateStarting    State = "starting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateTerminated  State = "terminated"
)

// transitions lists the states reachable from each state. Terminating is
// reachable from every live state so a failed start can still shut down.
var transitions = map[State][]State{
	StateInit:        {StateStarting, StateTerminating},
	StateStarting:    {StateRunning, StateTerminating},
	StateRunning:     {StateTerminating},
	StateTerminating: {StateTerminating, StateTerminated},
}

// AppState tracks the serve process phase and owns the component shutdown list.
type AppState struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	startedAt   time.Time
	changedAt   map[State]time.Time
	state       State
	pinger      pingerServer
	shutdowners []shutdown.Shutdowner
}

func New(logger *slog.Logger, appStart time.Time, pinger pingerServer) *AppState {
	return &AppState{
		logger:    logger,
		startedAt: appStart,
		changedAt: map[State]time.Time{StateInit: appStart},
		state:     StateInit,
		pinger:    pinger,
	}
}

func (s *AppState) RegisterPinger(p pinger.Pinger) error {
	return s.pinger.Register(p)
}

// RegisterShutdowner appends a component; components shut down in reverse
// registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)
}

// Pings returns the last outcome of every registered pinger.
func (s *AppState) Pings() []pinger.Status {
	return s.pinger.Snapshot()
}

func (s *AppState) SetStarting(ctx context.Context) error {
	return s.transition(ctx, StateStarting)
}

func (s *AppState) SetRunning(ctx context.Context) error {
	return s.transition(ctx, StateRunning)
}

func (s *AppState) SetTerminating(ctx context.Context) error {
	return s.transition(ctx, StateTerminating)
}

func (s *AppState) transition(ctx context.Context, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	if from == StateTerminated {
		return fmt.Errorf("set %s: %w", to, ErrAlreadyTerminated)
	}

	if !slices.Contains(transitions[from], to) {
		return fmt.Errorf("set %s from %s: %w", to, from, ErrInvalidStateTransition)
	}

	now := time.Now()
	s.state = to
	s.changedAt[to] = now

	s.logger.InfoContext(ctx, "state changed",
		"from", from,
		"to", to,
		"sinceStart", now.Sub(s.startedAt),
	)

	return nil
}

func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

func (s *AppState) GetUptime() time.Duration {
	return time.Since(s.GetStartTime())
}

// IsHealthy reports liveness: the process is up and serving.
func (s *AppState) IsHealthy() bool {
	return s.GetState() == StateRunning
}

// Readiness returns nil when the process is running and every pinger
// succeeded on its last run.
func (s *AppState) Readiness() error {
	if state := s.GetState(); state != StateRunning {
		return fmt.Errorf("%w: %s", ErrNotRunning, state)
	}

	if err := s.pinger.Check(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

func (s *AppState) IsReady() bool {
	return s.Readiness() == nil
}

// Shutdown stops the registered components and moves to Terminated.
// Calling it again after termination is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	shutdowners := slices.Clone(s.shutdowners)
	s.mu.RUnlock()

	shutdownErr := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	if err := s.transition(ctx, StateTerminated); err != nil {
		return err
	}

	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	return nil
}
