package lifecycle

import "time"

const (
	OpCreate  = "create"
	OpStart   = "start"
	OpStop    = "stop"
	OpDestroy = "destroy"
	OpStatus  = "status"
	OpUp      = "up"
	OpDown    = "down"
	OpRestart = "restart"
	OpAttach  = "attach"

	// DefaultGracePeriod is how long stop waits before the runtime kills the server.
	DefaultGracePeriod = 30 * time.Second
)
