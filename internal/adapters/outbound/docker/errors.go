package docker

import (
	"errors"
	"fmt"

	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
)

var errMissingState = errors.New("container inspect returned no state")

// ContainerNotFoundError reports that the named container does not exist.
type ContainerNotFoundError struct {
	Name string
	Err  error
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("container %s not found", e.Name)
}

func (e *ContainerNotFoundError) Unwrap() error {
	return e.Err
}

func (e *ContainerNotFoundError) IsNotFound() {}

// DaemonUnavailableError reports that the Docker daemon could not be reached.
type DaemonUnavailableError struct {
	Err error
}

func (e *DaemonUnavailableError) Error() string {
	return fmt.Sprintf("docker daemon unavailable: %v", e.Err)
}

func (e *DaemonUnavailableError) Unwrap() error {
	return e.Err
}

func (e *DaemonUnavailableError) IsUnavailable() {}

// wrapError marks connection failures so the lifecycle service can tell
// an unreachable daemon from a daemon that reported an error.
func wrapError(err error) error {
	if client.IsErrConnectionFailed(err) {
		return &DaemonUnavailableError{Err: err}
	}

	return err
}

// wrapContainerError additionally marks missing containers.
func wrapContainerError(name string, err error) error {
	if errdefs.IsNotFound(err) {
		return &ContainerNotFoundError{Name: name, Err: err}
	}

	return wrapError(err)
}
