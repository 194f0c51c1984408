package app

import (
	"context"

	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(p pinger.Pinger) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner)
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	GetState() appstate.State
	IsReady() bool
	Shutdown(ctx context.Context) error
}

// component is a long-running part of serve mode.
type component interface {
	shutdown.Shutdowner
	Start(ctx context.Context) error
	Ready() <-chan struct{}
}

// lifecycleService is the part of the lifecycle service serve mode uses.
type lifecycleService interface {
	Identity() lifecycle.Identity
	StatusQuery(ctx context.Context) (lifecycle.State, error)
	HealthQuery(ctx context.Context) (lifecycle.Health, error)
	RestartCommand(ctx context.Context) (lifecycle.State, error)
}
