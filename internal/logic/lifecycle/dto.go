package lifecycle

import (
	"fmt"
	"io"
	"net"
	"regexp"
	"strconv"
)

// State is the runtime's view of the server container.
// It is never cached; every operation re-reads it from the runtime.
type State string

const (
	StateAbsent  State = "absent"
	StateCreated State = "created"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

func (s State) String() string {
	return string(s)
}

// Health is the game readiness reported by the container health check.
// It refines StateRunning and never drives a transition.
type Health string

const (
	HealthNone      Health = "none"
	HealthStarting  Health = "starting"
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
)

func (h Health) String() string {
	return string(h)
}

var containerNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidName reports whether name can be used as a container name.
func ValidName(name string) bool {
	return containerNameRe.MatchString(name)
}

// Identity identifies one managed server and its backing container.
type Identity struct {
	name string
	host string
	port int
}

// NewIdentity validates and builds a server identity.
func NewIdentity(name, host string, port int) (Identity, error) {
	if name == "" {
		return Identity{}, fmt.Errorf("%w: name is empty", ErrInvalidIdentity)
	}

	if !ValidName(name) {
		return Identity{}, fmt.Errorf("%w: name %q is not a valid container name", ErrInvalidIdentity, name)
	}

	if port < 1 || port > 65535 {
		return Identity{}, fmt.Errorf("%w: port %d out of range", ErrInvalidIdentity, port)
	}

	return Identity{name: name, host: host, port: port}, nil
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Host() string {
	return i.host
}

func (i Identity) Port() int {
	return i.port
}

// ContainerName returns the container name the identity maps to.
func (i Identity) ContainerName() string {
	return i.name
}

// Address returns host:port of the public binding.
func (i Identity) Address() string {
	return net.JoinHostPort(i.host, strconv.Itoa(i.port))
}

// Binding is the host side of the published server port.
type Binding struct {
	Host string
	Port int
}

// LaunchParams are the server-variant container parameters.
// The controller passes them through to the runtime untouched.
type LaunchParams struct {
	Image         string
	Env           []string
	DataDir       string
	ContainerPort int
	RestartPolicy string
	Labels        map[string]string
}

// Stream is an attached container process stream.
// Reads return the process output, writes go to the process stdin.
type Stream interface {
	io.ReadWriteCloser
}
