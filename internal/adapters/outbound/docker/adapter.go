package docker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/moby/term"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

type adapter struct {
	logger   *slog.Logger
	engine   engineAPI
	progress io.Writer
}

// NewClient connects to the Docker daemon configured by the environment
// (DOCKER_HOST, DOCKER_CERT_PATH, ...) and negotiates the API version.
func NewClient() (*client.Client, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}

	return cli, nil
}

// New creates a new Docker adapter. Image pull progress is rendered to
// progress; pass io.Discard to suppress it.
func New(
	logger *slog.Logger,
	engine engineAPI,
	progress io.Writer,
) lifecycle.Runtime {
	if progress == nil {
		progress = io.Discard
	}

	return &adapter{
		logger:   logger,
		engine:   engine,
		progress: progress,
	}
}

var _ lifecycle.Runtime = (*adapter)(nil)

func (a *adapter) CreateCommand(
	ctx context.Context,
	name string,
	binding lifecycle.Binding,
	params lifecycle.LaunchParams,
) error {
	cfg, hostCfg, err := toContainerConfig(name, binding, params)
	if err != nil {
		return fmt.Errorf("create container: %w", err)
	}

	if params.DataDir != "" {
		if err := os.MkdirAll(params.DataDir, dataDirPerm); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	if err := a.pullImage(ctx, params.Image); err != nil {
		return err
	}

	resp, err := a.engine.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	if err != nil {
		return fmt.Errorf("create container: %w", wrapError(err))
	}

	for _, warning := range resp.Warnings {
		a.logger.WarnContext(ctx, "container create warning", "container", name, "warning", warning)
	}

	a.logger.DebugContext(ctx, "container created", "container", name, "id", resp.ID)

	return nil
}

func (a *adapter) pullImage(ctx context.Context, ref string) error {
	a.logger.DebugContext(ctx, "pulling image", "image", ref)

	reader, err := a.engine.ImagePull(ctx, ref, types.ImagePullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, wrapError(err))
	}
	defer reader.Close()

	fd, isTerm := term.GetFdInfo(a.progress)

	err = jsonmessage.DisplayJSONMessagesStream(reader, a.progress, fd, isTerm, nil)
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}

	return nil
}

func (a *adapter) StartCommand(ctx context.Context, name string) error {
	err := a.engine.ContainerStart(ctx, name, container.StartOptions{})
	if err != nil {
		return fmt.Errorf("start container: %w", wrapContainerError(name, err))
	}

	return nil
}

func (a *adapter) StopCommand(ctx context.Context, name string, grace time.Duration) error {
	timeout := int(grace.Round(time.Second) / time.Second)

	err := a.engine.ContainerStop(ctx, name, container.StopOptions{Timeout: &timeout})
	if err != nil {
		return fmt.Errorf("stop container: %w", wrapContainerError(name, err))
	}

	return nil
}

func (a *adapter) RemoveCommand(ctx context.Context, name string) error {
	err := a.engine.ContainerRemove(ctx, name, container.RemoveOptions{})
	if err != nil {
		return fmt.Errorf("remove container: %w", wrapContainerError(name, err))
	}

	return nil
}

func (a *adapter) InspectQuery(ctx context.Context, name string) (lifecycle.State, error) {
	info, err := a.engine.ContainerInspect(ctx, name)
	if err != nil {
		return "", fmt.Errorf("inspect container: %w", wrapContainerError(name, err))
	}

	state, err := toDomainState(info)
	if err != nil {
		return "", fmt.Errorf("inspect container %s: %w", name, err)
	}

	return state, nil
}

func (a *adapter) HealthQuery(ctx context.Context, name string) (lifecycle.Health, error) {
	info, err := a.engine.ContainerInspect(ctx, name)
	if err != nil {
		return "", fmt.Errorf("inspect container health: %w", wrapContainerError(name, err))
	}

	health, err := toDomainHealth(info)
	if err != nil {
		return "", fmt.Errorf("inspect container %s: %w", name, err)
	}

	return health, nil
}

// AttachCommand attaches with the caller's detach keys. Left empty, the
// daemon would detach a TTY session on ctrl-p,ctrl-q by itself.
func (a *adapter) AttachCommand(ctx context.Context, name, detachKeys string) (lifecycle.Stream, error) {
	info, err := a.engine.ContainerInspect(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("attach container: %w", wrapContainerError(name, err))
	}

	resp, err := a.engine.ContainerAttach(ctx, name, container.AttachOptions{
		Stream:     true,
		Stdin:      true,
		Stdout:     true,
		Stderr:     true,
		DetachKeys: detachKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("attach container: %w", wrapContainerError(name, err))
	}

	tty := info.Config != nil && info.Config.Tty

	return newStream(resp, tty), nil
}
