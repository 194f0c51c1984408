package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/infra/cronparser"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
	"github.com/skillcoder/minecraft-compose/internal/logic/scheduler"
	"github.com/skillcoder/minecraft-compose/internal/logic/scheduler/mocks"
)

// soonSchedule fires shortly after every call, regardless of the cron expression.
type soonSchedule struct {
	delay time.Duration
}

func (s soonSchedule) NextAfter(_, _ string, after time.Time) (time.Time, error) {
	return after.Add(s.delay), nil
}

func newTestScheduler(restarter scheduler.Restarter, schedule scheduler.Schedule, spec string) *scheduler.Service {
	return scheduler.New(slog.New(slog.DiscardHandler), restarter, schedule, "server", spec, "UTC")
}

func TestService_RestartCommand(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		giveState   lifecycle.State
		giveErr     error
		giveRestart error
		wantRestart bool
		wantErr     error
	}{
		{
			name:        "running server is restarted",
			giveState:   lifecycle.StateRunning,
			wantRestart: true,
		},
		{
			name:      "stopped server is skipped",
			giveState: lifecycle.StateStopped,
		},
		{
			name:      "absent server is skipped",
			giveState: lifecycle.StateAbsent,
		},
		{
			name:    "status failure",
			giveErr: lifecycle.ErrRuntimeUnavailable,
			wantErr: lifecycle.ErrRuntimeUnavailable,
		},
		{
			name:        "restart failure",
			giveState:   lifecycle.StateRunning,
			giveRestart: errBoom,
			wantRestart: true,
			wantErr:     errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			restarter := mocks.NewMockRestarter(t)
			restarter.EXPECT().StatusQuery(mock.Anything).Return(tt.giveState, tt.giveErr).Once()

			if tt.wantRestart {
				restarter.EXPECT().RestartCommand(mock.Anything).Return(lifecycle.StateRunning, tt.giveRestart).Once()
			}

			svc := newTestScheduler(restarter, cronparser.New(), "0 4 * * *")

			err := svc.RestartCommand(t.Context())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_StartRejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	svc := newTestScheduler(mocks.NewMockRestarter(t), cronparser.New(), "every night")

	err := svc.Start(t.Context())
	require.Error(t, err)
	require.ErrorIs(t, svc.Ping(t.Context()), scheduler.ErrNotStarted)
}

func TestService_RunCommandRestartsOnSchedule(t *testing.T) {
	t.Parallel()

	restarted := make(chan struct{})

	var once sync.Once

	restarter := mocks.NewMockRestarter(t)
	restarter.EXPECT().StatusQuery(mock.Anything).Return(lifecycle.StateRunning, nil)
	restarter.EXPECT().RestartCommand(mock.Anything).RunAndReturn(func(context.Context) (lifecycle.State, error) {
		once.Do(func() { close(restarted) })

		return lifecycle.StateRunning, nil
	})

	svc := newTestScheduler(restarter, soonSchedule{delay: 10 * time.Millisecond}, "@test")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))

	select {
	case <-svc.Ready():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not become ready")
	}

	require.NoError(t, svc.Ping(t.Context()))

	select {
	case <-restarted:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled restart did not happen")
	}

	require.False(t, svc.NextRun().IsZero())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer shutdownCancel()

	require.NoError(t, svc.Shutdown(shutdownCtx))
	require.NoError(t, svc.Shutdown(shutdownCtx))
}

func TestService_ShutdownTimesOutWhenLoopNeverStarted(t *testing.T) {
	t.Parallel()

	svc := newTestScheduler(mocks.NewMockRestarter(t), cronparser.New(), "0 4 * * *")

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	err := svc.Shutdown(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
