package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/logic/status"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	Readiness() error
	GetUptime() time.Duration
	GetStartTime() time.Time
	Pings() []pinger.Status
}

// reporter produces the live container report.
type reporter interface {
	Report(ctx context.Context) (status.Report, error)
}
