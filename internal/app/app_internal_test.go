package app

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/config"
	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
}

func TestAllChannelsClose(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
		},
		{
			name:                         "context cancelled closes without inputs",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 || tt.giveContextCancelBeforeClose {
				select {
				case <-out:
				case <-time.After(500 * time.Millisecond):
					t.Fatal("expected out channel to close without input channels closing")
				}

				return
			}

			select {
			case <-out:
				t.Fatal("out channel closed before the inputs")
			case <-time.After(20 * time.Millisecond):
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}

type fakeService struct {
	identity lifecycle.Identity
	queries  atomic.Int32
	err      error
}

func (s *fakeService) Identity() lifecycle.Identity { return s.identity }

func (s *fakeService) StatusQuery(context.Context) (lifecycle.State, error) {
	s.queries.Add(1)

	if s.err != nil {
		return "", s.err
	}

	return lifecycle.StateRunning, nil
}

func (s *fakeService) HealthQuery(context.Context) (lifecycle.Health, error) {
	return lifecycle.HealthHealthy, s.err
}

func (s *fakeService) RestartCommand(context.Context) (lifecycle.State, error) {
	return lifecycle.StateRunning, nil
}

func newServeApp(t *testing.T, service *fakeService) *App {
	t.Helper()

	identity, err := lifecycle.NewIdentity("survival", "0.0.0.0", 25565)
	require.NoError(t, err)

	service.identity = identity

	cfg := &config.Config{
		Serve: config.ServeConfig{HTTPPort: "0", MetricsPort: "0"},
		Schedule: config.ScheduleConfig{
			Restart:  "0 4 * * *",
			Timezone: "UTC",
		},
	}

	return New(slog.Default(), cfg, service)
}

func runApp(t *testing.T, a *App) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)

	go func() {
		errCh <- a.Run(ctx)
	}()

	return cancel, errCh
}

func waitStopped(t *testing.T, errCh <-chan error) error {
	t.Helper()

	select {
	case err := <-errCh:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop")

		return nil
	}
}

func TestApp_RunAndShutdown(t *testing.T) {
	t.Parallel()

	service := &fakeService{}
	a := newServeApp(t, service)
	require.Len(t, a.components, 3)

	cancel, errCh := runApp(t, a)

	require.Eventually(t, a.appState.IsReady, 5*time.Second, 10*time.Millisecond)
	require.Positive(t, service.queries.Load())

	cancel()

	require.NoError(t, waitStopped(t, errCh))
	require.Equal(t, appstate.StateTerminated, a.appState.GetState())
}

func TestApp_RuntimeDownIsRunningButNotReady(t *testing.T) {
	t.Parallel()

	service := &fakeService{err: lifecycle.ErrRuntimeUnavailable}
	a := newServeApp(t, service)

	cancel, errCh := runApp(t, a)

	require.Eventually(t, func() bool {
		return a.appState.GetState() == appstate.StateRunning
	}, 5*time.Second, 10*time.Millisecond)
	require.False(t, a.appState.IsReady())

	cancel()

	require.NoError(t, waitStopped(t, errCh))
}

func TestApp_NoScheduleSkipsScheduler(t *testing.T) {
	t.Parallel()

	identity, err := lifecycle.NewIdentity("survival", "0.0.0.0", 25565)
	require.NoError(t, err)

	a := New(slog.Default(), &config.Config{}, &fakeService{identity: identity})
	require.Len(t, a.components, 2)
}
