package docker

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

const (
	// LabelServer marks containers managed by mcc with the server name.
	LabelServer = "io.github.skillcoder.minecraft-compose.server"

	dataMountPath = "/data"
	dataDirPerm   = 0o755
)

func toDomainState(info types.ContainerJSON) (lifecycle.State, error) {
	if info.ContainerJSONBase == nil || info.State == nil {
		return "", errMissingState
	}

	switch info.State.Status {
	case "created":
		return lifecycle.StateCreated, nil
	case "running", "restarting", "paused":
		return lifecycle.StateRunning, nil
	case "exited", "dead":
		return lifecycle.StateStopped, nil
	case "removing":
		return lifecycle.StateAbsent, nil
	default:
		return "", fmt.Errorf("unknown container status %q", info.State.Status)
	}
}

// toDomainHealth reads the health check of a running container. Any other
// container, or one without a health check, reports HealthNone.
func toDomainHealth(info types.ContainerJSON) (lifecycle.Health, error) {
	state, err := toDomainState(info)
	if err != nil {
		return "", err
	}

	if state != lifecycle.StateRunning || info.State.Health == nil {
		return lifecycle.HealthNone, nil
	}

	switch info.State.Health.Status {
	case types.Starting:
		return lifecycle.HealthStarting, nil
	case types.Healthy:
		return lifecycle.HealthHealthy, nil
	case types.Unhealthy:
		return lifecycle.HealthUnhealthy, nil
	default:
		return lifecycle.HealthNone, nil
	}
}

func toContainerConfig(
	name string,
	binding lifecycle.Binding,
	params lifecycle.LaunchParams,
) (*container.Config, *container.HostConfig, error) {
	port, err := nat.NewPort("tcp", strconv.Itoa(params.ContainerPort))
	if err != nil {
		return nil, nil, fmt.Errorf("container port %d: %w", params.ContainerPort, err)
	}

	labels := make(map[string]string, len(params.Labels)+1)
	maps.Copy(labels, params.Labels)
	labels[LabelServer] = name

	cfg := &container.Config{
		Image:        params.Image,
		Env:          params.Env,
		Labels:       labels,
		ExposedPorts: nat.PortSet{port: struct{}{}},
		// The console attaches to the server's stdin, so it has to stay open.
		Tty:          true,
		OpenStdin:    true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
	}

	hostCfg := &container.HostConfig{
		PortBindings: nat.PortMap{
			port: []nat.PortBinding{{
				HostIP:   binding.Host,
				HostPort: strconv.Itoa(binding.Port),
			}},
		},
		RestartPolicy: container.RestartPolicy{
			Name: container.RestartPolicyMode(params.RestartPolicy),
		},
	}

	if params.DataDir != "" {
		hostCfg.Binds = []string{params.DataDir + ":" + dataMountPath}
	}

	return cfg, hostCfg, nil
}
