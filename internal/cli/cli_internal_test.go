package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/adapters/outbound/docker"
	"github.com/skillcoder/minecraft-compose/internal/config"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle/mocks"
)

const testConfig = `
name = "survival"

[server]
version = "1.20.4"
`

var errBoom = errors.New("boom")

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give error
		want int
	}{
		{name: "nil", give: nil, want: ExitOK},
		{name: "generic", give: errBoom, want: ExitError},
		{name: "config", give: config.ErrInvalid, want: ExitError},
		{
			name: "already exists",
			give: &lifecycle.OperationError{Op: lifecycle.OpCreate, State: lifecycle.StateRunning, Err: lifecycle.ErrAlreadyExists},
			want: ExitAlreadyExists,
		},
		{
			name: "invalid state",
			give: &lifecycle.OperationError{Op: lifecycle.OpStart, State: lifecycle.StateAbsent, Err: lifecycle.ErrInvalidState},
			want: ExitInvalidState,
		},
		{
			name: "runtime unavailable",
			give: fmt.Errorf("status report: %w", lifecycle.ErrRuntimeUnavailable),
			want: ExitRuntimeUnavailable,
		},
		{name: "runtime", give: fmt.Errorf("%w: %w", lifecycle.ErrRuntime, errBoom), want: ExitRuntime},
		{
			name: "interrupted wins",
			give: fmt.Errorf("%w: %w", lifecycle.ErrInterrupted, lifecycle.ErrRuntime),
			want: ExitInterrupted,
		},
		{name: "context canceled", give: context.Canceled, want: ExitInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, ExitCode(tt.give))
		})
	}
}

type cliHarness struct {
	opts   *options
	out    *bytes.Buffer
	errOut *bytes.Buffer
	config string
}

func newHarness(t *testing.T, runtime lifecycle.Runtime) *cliHarness {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mcc.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	h := &cliHarness{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		config: path,
	}

	h.opts = &options{
		streams: IOStreams{Out: h.out, Err: h.errOut},
		newRuntime: func(*slog.Logger, io.Writer) (lifecycle.Runtime, io.Closer, error) {
			return runtime, nil, nil
		},
	}

	return h
}

func (h *cliHarness) run(ctx context.Context, args ...string) int {
	return run(ctx, h.opts, append([]string{"-f", h.config}, args...))
}

func notFound() error {
	return &docker.ContainerNotFoundError{Name: "survival", Err: errBoom}
}

func TestRun_UpFromAbsent(t *testing.T) {
	t.Parallel()

	runtime := mocks.NewMockRuntime(t)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return("", notFound()).Times(2)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateCreated, nil).Once()
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateRunning, nil).Once()
	runtime.EXPECT().
		CreateCommand(mock.Anything, "survival", lifecycle.Binding{Host: "0.0.0.0", Port: 25565}, mock.Anything).
		Return(nil).Once()
	runtime.EXPECT().StartCommand(mock.Anything, "survival").Return(nil).Once()

	h := newHarness(t, runtime)

	require.Equal(t, ExitOK, h.run(t.Context(), "up"))
	require.Contains(t, h.out.String(), "survival running 0.0.0.0:25565")
}

func TestRun_QuietUpPrintsNothing(t *testing.T) {
	t.Parallel()

	runtime := mocks.NewMockRuntime(t)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateRunning, nil).Once()

	h := newHarness(t, runtime)

	require.Equal(t, ExitOK, h.run(t.Context(), "-q", "up"))
	require.Empty(t, h.out.String())
}

func TestRun_StatusJSON(t *testing.T) {
	t.Parallel()

	runtime := mocks.NewMockRuntime(t)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateStopped, nil).Once()

	h := newHarness(t, runtime)

	require.Equal(t, ExitOK, h.run(t.Context(), "status", "--output", "json"))
	require.JSONEq(t, `{"name":"survival","host":"0.0.0.0","port":25565,"state":"stopped"}`, h.out.String())
}

func TestRun_StatusShowsHealth(t *testing.T) {
	t.Parallel()

	runtime := mocks.NewMockRuntime(t)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateRunning, nil).Once()
	runtime.EXPECT().HealthQuery(mock.Anything, "survival").Return(lifecycle.HealthStarting, nil).Once()

	h := newHarness(t, runtime)

	require.Equal(t, ExitOK, h.run(t.Context(), "status"))
	require.Contains(t, h.out.String(), "survival running (starting) 0.0.0.0:25565")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveSetup func(r *mocks.MockRuntime)
		giveArgs  []string
		wantCode  int
	}{
		{
			name: "create while running",
			giveSetup: func(r *mocks.MockRuntime) {
				r.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateRunning, nil).Once()
			},
			giveArgs: []string{"create"},
			wantCode: ExitAlreadyExists,
		},
		{
			name: "start while absent",
			giveSetup: func(r *mocks.MockRuntime) {
				r.EXPECT().InspectQuery(mock.Anything, "survival").Return("", notFound()).Once()
			},
			giveArgs: []string{"start"},
			wantCode: ExitInvalidState,
		},
		{
			name: "console while stopped",
			giveSetup: func(r *mocks.MockRuntime) {
				r.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateStopped, nil).Once()
			},
			giveArgs: []string{"console"},
			wantCode: ExitInvalidState,
		},
		{
			name: "status with daemon down",
			giveSetup: func(r *mocks.MockRuntime) {
				r.EXPECT().InspectQuery(mock.Anything, "survival").
					Return("", &docker.DaemonUnavailableError{Err: errBoom}).Once()
			},
			giveArgs: []string{"status"},
			wantCode: ExitRuntimeUnavailable,
		},
		{
			name: "start fails in runtime",
			giveSetup: func(r *mocks.MockRuntime) {
				r.EXPECT().InspectQuery(mock.Anything, "survival").Return(lifecycle.StateStopped, nil).Once()
				r.EXPECT().StartCommand(mock.Anything, "survival").Return(errBoom).Once()
			},
			giveArgs: []string{"start"},
			wantCode: ExitRuntime,
		},
		{
			name:      "unknown output format",
			giveSetup: func(*mocks.MockRuntime) {},
			giveArgs:  []string{"status", "-o", "yaml"},
			wantCode:  ExitError,
		},
		{
			name:      "unknown log format",
			giveSetup: func(*mocks.MockRuntime) {},
			giveArgs:  []string{"--log-format", "xml", "status"},
			wantCode:  ExitError,
		},
		{
			name:      "unknown command",
			giveSetup: func(*mocks.MockRuntime) {},
			giveArgs:  []string{"teleport"},
			wantCode:  ExitError,
		},
		{
			name:      "extra argument",
			giveSetup: func(*mocks.MockRuntime) {},
			giveArgs:  []string{"up", "now"},
			wantCode:  ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runtime := mocks.NewMockRuntime(t)
			tt.giveSetup(runtime)

			h := newHarness(t, runtime)

			require.Equal(t, tt.wantCode, h.run(t.Context(), tt.giveArgs...))
			require.Contains(t, h.errOut.String(), "mcc: ")
		})
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	h := newHarness(t, mocks.NewMockRuntime(t))
	h.config = filepath.Join(t.TempDir(), "absent.toml")

	require.Equal(t, ExitError, h.run(t.Context(), "status"))
	require.Contains(t, h.errOut.String(), config.ErrNotFound.Error())
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	runtime := mocks.NewMockRuntime(t)
	runtime.EXPECT().InspectQuery(mock.Anything, "survival").Return("", context.Canceled).Once()

	h := newHarness(t, runtime)

	require.Equal(t, ExitInterrupted, h.run(ctx, "down"))
}

func TestRun_DatapacksSync(t *testing.T) {
	t.Parallel()

	h := newHarness(t, mocks.NewMockRuntime(t))
	dir := filepath.Dir(h.config)

	content := testConfig + `
[datapacks]
terralith = "Terralith.zip"
missing = "absent.zip"
`
	require.NoError(t, os.WriteFile(h.config, []byte(content), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "datapacks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "datapacks", "Terralith.zip"), []byte("pack"), 0o600))

	installDir := filepath.Join(dir, "data", "world", "datapacks")
	require.NoError(t, os.MkdirAll(installDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(installDir, "old.zip"), []byte("stale"), 0o600))

	require.Equal(t, ExitOK, h.run(t.Context(), "datapacks", "sync"))
	require.Equal(t, "installed: terralith\nremoved: old\nskipped: missing\n", h.out.String())

	got, err := os.ReadFile(filepath.Join(installDir, "terralith.zip"))
	require.NoError(t, err)
	require.Equal(t, "pack", string(got))
	require.NoFileExists(t, filepath.Join(installDir, "old.zip"))
}
