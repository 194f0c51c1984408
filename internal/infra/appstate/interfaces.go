package appstate

import "github.com/skillcoder/minecraft-compose/internal/infra/pinger"

// pingerServer is the part of the pinger service the state reads.
type pingerServer interface {
	Register(p pinger.Pinger) error
	Snapshot() []pinger.Status
	Check() error
}

type healthChecker interface {
	IsHealthy() bool
}

type readyChecker interface {
	Readiness() error
}
