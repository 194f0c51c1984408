package pinger

import (
	"context"
	"time"
)

// Pinger defines the interface for health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// timeoutPinger lets a pinger override the default ping timeout.
type timeoutPinger interface {
	PingerTimeout() time.Duration
}
