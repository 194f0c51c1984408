package scheduler

import (
	"context"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// Restarter is the slice of the lifecycle service the scheduler drives.
type Restarter interface {
	StatusQuery(ctx context.Context) (lifecycle.State, error)
	RestartCommand(ctx context.Context) (lifecycle.State, error)
}

// Schedule computes cron occurrences.
type Schedule interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}
