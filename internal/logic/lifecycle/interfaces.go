package lifecycle

import (
	"context"
	"time"
)

// Runtime is the port interface for container runtime operations.
// Implementations are provided by adapters in the outbound layer.
type Runtime interface {
	CreateCommand(
		ctx context.Context,
		name string,
		binding Binding,
		params LaunchParams,
	) error

	StartCommand(
		ctx context.Context,
		name string,
	) error

	StopCommand(
		ctx context.Context,
		name string,
		grace time.Duration,
	) error

	RemoveCommand(
		ctx context.Context,
		name string,
	) error

	InspectQuery(
		ctx context.Context,
		name string,
	) (State, error)

	// HealthQuery returns HealthNone for a container without a health check.
	HealthQuery(
		ctx context.Context,
		name string,
	) (Health, error)

	// AttachCommand opens the console stream. detachKeys is handed to the
	// runtime so it does not apply a detach sequence of its own.
	AttachCommand(
		ctx context.Context,
		name string,
		detachKeys string,
	) (Stream, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// unavailable is a private interface for checking "runtime unreachable"
// errors without importing the adapter package.
type unavailable interface {
	IsUnavailable()
}
