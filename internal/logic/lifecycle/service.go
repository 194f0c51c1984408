package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/infra/metrics"
)

// Service drives one server container through its lifecycle.
// It keeps no state of its own: every operation reads the live container
// state from the runtime before acting.
type Service struct {
	logger   *slog.Logger
	runtime  Runtime
	identity Identity
	params   LaunchParams
	grace    time.Duration
}

// New creates a new lifecycle service.
func New(
	logger *slog.Logger,
	runtime Runtime,
	identity Identity,
	params LaunchParams,
	grace time.Duration,
) *Service {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}

	return &Service{
		logger:   logger.With("container", identity.ContainerName()),
		runtime:  runtime,
		identity: identity,
		params:   params,
		grace:    grace,
	}
}

// Identity returns the server identity the service acts upon.
func (s *Service) Identity() Identity {
	return s.identity
}

// StatusQuery returns the live container state. It never mutates anything.
func (s *Service) StatusQuery(ctx context.Context) (State, error) {
	state, err := s.inspect(ctx, OpStatus)
	if err != nil {
		return "", err
	}

	metrics.RecordContainerState(s.identity.Name(), string(state))

	return state, nil
}

// HealthQuery returns the game readiness of the server. Only a running
// server has a health other than HealthNone.
func (s *Service) HealthQuery(ctx context.Context) (Health, error) {
	health, err := s.runtime.HealthQuery(ctx, s.identity.ContainerName())
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			return HealthNone, nil
		}

		return "", s.fail(ctx, OpStatus, "", err)
	}

	return health, nil
}

// CreateCommand creates the server container. Valid only when absent.
func (s *Service) CreateCommand(ctx context.Context) error {
	state, err := s.inspect(ctx, OpCreate)
	if err != nil {
		return err
	}

	if state != StateAbsent {
		return s.reject(OpCreate, state, ErrAlreadyExists)
	}

	binding := Binding{
		Host: s.identity.Host(),
		Port: s.identity.Port(),
	}

	err = s.runtime.CreateCommand(ctx, s.identity.ContainerName(), binding, s.params)
	if err != nil {
		return s.fail(ctx, OpCreate, state, err)
	}

	s.succeed(ctx, OpCreate, "container created", "image", s.params.Image, "address", s.identity.Address())

	return nil
}

// StartCommand starts the server process. Valid when created or stopped.
func (s *Service) StartCommand(ctx context.Context) error {
	state, err := s.inspect(ctx, OpStart)
	if err != nil {
		return err
	}

	switch state {
	case StateCreated, StateStopped:
	case StateAbsent:
		return s.reject(OpStart, state, fmt.Errorf("%w: container does not exist", ErrInvalidState))
	default:
		return s.reject(OpStart, state, fmt.Errorf("%w: container is already running", ErrInvalidState))
	}

	err = s.runtime.StartCommand(ctx, s.identity.ContainerName())
	if err != nil {
		return s.fail(ctx, OpStart, state, err)
	}

	s.succeed(ctx, OpStart, "container started")

	return nil
}

// StopCommand stops the server process gracefully, killing it after the
// grace period. Valid only when running. For an existing container in any
// other state the runtime stop is still attempted and its outcome logged,
// but the call reports ErrInvalidState.
func (s *Service) StopCommand(ctx context.Context) error {
	state, err := s.inspect(ctx, OpStop)
	if err != nil {
		return err
	}

	switch state {
	case StateRunning:
	case StateAbsent:
		return s.reject(OpStop, state, fmt.Errorf("%w: container does not exist", ErrInvalidState))
	default:
		s.bestEffortStop(ctx, state)

		return s.reject(OpStop, state, fmt.Errorf("%w: container is not running", ErrInvalidState))
	}

	err = s.runtime.StopCommand(ctx, s.identity.ContainerName(), s.grace)
	if err != nil {
		return s.fail(ctx, OpStop, state, err)
	}

	s.succeed(ctx, OpStop, "container stopped", "grace", s.grace)

	return nil
}

// DestroyCommand removes the container and its writable layer.
// Valid when created or stopped; bind-mounted server data survives.
func (s *Service) DestroyCommand(ctx context.Context) error {
	state, err := s.inspect(ctx, OpDestroy)
	if err != nil {
		return err
	}

	switch state {
	case StateCreated, StateStopped:
	case StateAbsent:
		return s.reject(OpDestroy, state, fmt.Errorf("%w: container does not exist", ErrInvalidState))
	default:
		return s.reject(OpDestroy, state, fmt.Errorf("%w: container is running, stop it first", ErrInvalidState))
	}

	err = s.runtime.RemoveCommand(ctx, s.identity.ContainerName())
	if err != nil {
		return s.fail(ctx, OpDestroy, state, err)
	}

	s.succeed(ctx, OpDestroy, "container destroyed")

	return nil
}

// UpCommand drives the container to running from any state.
// It stops at the first failing step and returns the final live state.
func (s *Service) UpCommand(ctx context.Context) (State, error) {
	state, err := s.inspect(ctx, OpUp)
	if err != nil {
		return "", err
	}

	switch state {
	case StateRunning:
		s.logger.InfoContext(ctx, "server is already running")

		return state, nil
	case StateAbsent:
		err = s.CreateCommand(ctx)
		if err != nil {
			return state, err
		}

		fallthrough
	case StateCreated, StateStopped:
		err = s.StartCommand(ctx)
		if err != nil {
			return s.settle(ctx, state), err
		}
	}

	return s.inspect(ctx, OpUp)
}

// DownCommand drives the container to absent from any state.
// It stops at the first failing step and returns the final live state.
func (s *Service) DownCommand(ctx context.Context) (State, error) {
	state, err := s.inspect(ctx, OpDown)
	if err != nil {
		return "", err
	}

	switch state {
	case StateAbsent:
		s.logger.InfoContext(ctx, "server container does not exist")

		return state, nil
	case StateRunning:
		err = s.StopCommand(ctx)
		if err != nil {
			return state, err
		}

		fallthrough
	case StateCreated, StateStopped:
		err = s.DestroyCommand(ctx)
		if err != nil {
			return s.settle(ctx, state), err
		}
	}

	return s.inspect(ctx, OpDown)
}

// RestartCommand stops and starts a running server.
func (s *Service) RestartCommand(ctx context.Context) (State, error) {
	state, err := s.inspect(ctx, OpRestart)
	if err != nil {
		return "", err
	}

	if state != StateRunning {
		return state, s.reject(OpRestart, state, fmt.Errorf("%w: container is not running", ErrInvalidState))
	}

	err = s.StopCommand(ctx)
	if err != nil {
		return state, err
	}

	err = s.StartCommand(ctx)
	if err != nil {
		return s.settle(ctx, StateStopped), err
	}

	return s.inspect(ctx, OpRestart)
}

// AttachCommand opens the primary process stream of a running server.
// detachKeys uses Docker's key syntax.
func (s *Service) AttachCommand(ctx context.Context, detachKeys string) (Stream, error) {
	state, err := s.inspect(ctx, OpAttach)
	if err != nil {
		return nil, err
	}

	if state != StateRunning {
		return nil, s.reject(OpAttach, state, fmt.Errorf("%w: console requires a running server", ErrInvalidState))
	}

	stream, err := s.runtime.AttachCommand(ctx, s.identity.ContainerName(), detachKeys)
	if err != nil {
		return nil, s.fail(ctx, OpAttach, state, err)
	}

	s.succeed(ctx, OpAttach, "attached to server console")

	return stream, nil
}

func (s *Service) inspect(ctx context.Context, op string) (State, error) {
	state, err := s.runtime.InspectQuery(ctx, s.identity.ContainerName())
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			return StateAbsent, nil
		}

		return "", s.fail(ctx, op, "", err)
	}

	return state, nil
}

// settle re-reads the state after a failed composite step. The failure is
// what the caller reports, so a failing read falls back to the last known state.
func (s *Service) settle(ctx context.Context, fallback State) State {
	state, err := s.runtime.InspectQuery(ctx, s.identity.ContainerName())
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			return StateAbsent
		}

		return fallback
	}

	return state
}

func (s *Service) bestEffortStop(ctx context.Context, state State) {
	logger := s.logger.With("operation", OpStop, "state", state)

	err := s.runtime.StopCommand(ctx, s.identity.ContainerName(), s.grace)
	if err != nil {
		logger.WarnContext(ctx, "best-effort stop failed", "reason", err)

		return
	}

	logger.DebugContext(ctx, "best-effort stop completed")
}

func (s *Service) succeed(ctx context.Context, op, msg string, args ...any) {
	metrics.RecordOperation(op, metrics.ResultOK)

	s.logger.With("operation", op).InfoContext(ctx, msg, args...)
}

func (s *Service) reject(op string, state State, err error) error {
	metrics.RecordOperation(op, metrics.ResultRejected)

	return &OperationError{Op: op, State: state, Err: err}
}

func (s *Service) fail(ctx context.Context, op string, state State, err error) error {
	var (
		cause  error
		result string
	)

	var unreachable unavailable

	switch {
	case errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled):
		cause = fmt.Errorf("%w: %w", ErrInterrupted, err)
		result = metrics.ResultInterrupted
	case errors.As(err, &unreachable):
		cause = fmt.Errorf("%w: %w", ErrRuntimeUnavailable, err)
		result = metrics.ResultUnavailable
	default:
		cause = fmt.Errorf("%w: %w", ErrRuntime, err)
		result = metrics.ResultError
	}

	metrics.RecordOperation(op, result)

	return &OperationError{Op: op, State: state, Err: cause}
}
