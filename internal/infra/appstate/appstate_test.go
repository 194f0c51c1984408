package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown/mocks"
)

type namedPinger struct {
	name string
	err  error
}

func (p namedPinger) Name() string                 { return p.name }
func (p namedPinger) Ping(_ context.Context) error { return p.err }

func newState(t *testing.T) (*appstate.AppState, *pinger.Service) {
	t.Helper()

	logger := slog.Default()
	pingerSvc := pinger.New(logger, time.Hour)

	return appstate.New(logger, time.Now(), pingerSvc), pingerSvc
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.ErrorIs(t, s.SetRunning(t.Context()), appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(t.Context()))
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_Readiness(t *testing.T) {
	t.Parallel()

	t.Run("not running", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.False(t, s.IsHealthy())
		require.ErrorIs(t, s.Readiness(), appstate.ErrNotRunning)

		require.NoError(t, s.SetStarting(t.Context()))
		require.False(t, s.IsReady())
	})

	t.Run("running without pingers", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.True(t, s.IsHealthy())
		require.True(t, s.IsReady())
	})

	t.Run("running with a failing pinger", func(t *testing.T) {
		t.Parallel()

		s, pingerSvc := newState(t)
		require.NoError(t, s.RegisterPinger(namedPinger{name: "docker", err: errors.New("daemon down")}))
		require.NoError(t, s.RegisterPinger(namedPinger{name: "scheduler"}))

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, pingerSvc.Start(ctx))
		<-pingerSvc.Ready()

		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.True(t, s.IsHealthy())

		err := s.Readiness()
		require.ErrorContains(t, err, "docker")
		require.ErrorContains(t, err, "daemon down")

		pings := s.Pings()
		require.Len(t, pings, 2)
		require.False(t, pings[0].OK())
		require.True(t, pings[1].OK())
	})
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	startTime := time.Now().Add(-time.Minute)
	s := appstate.New(slog.Default(), startTime, pinger.New(slog.Default(), time.Hour))

	require.Equal(t, startTime, s.GetStartTime())
	require.GreaterOrEqual(t, s.GetUptime(), time.Minute)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("components in reverse order then terminated", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)

		var order []string

		for _, name := range []string{"http-server", "restart-scheduler"} {
			m := mocks.NewMockShutdowner(t)
			m.EXPECT().Name().Return(name).Once()
			m.EXPECT().Shutdown(mock.Anything).
				Run(func(context.Context) { order = append(order, name) }).
				Return(nil).Once()
			s.RegisterShutdowner(m)
		}

		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())
		require.Equal(t, []string{"restart-scheduler", "http-server"}, order)

		// mocks expect exactly one call each
		require.NoError(t, s.Shutdown(t.Context()))
	})

	t.Run("component error still terminates", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("http-server").Once()
		m.EXPECT().Shutdown(mock.Anything).Return(context.DeadlineExceeded).Once()
		s.RegisterShutdowner(m)

		err := s.Shutdown(t.Context())
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}
