package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

// Querier reads the live container state.
type Querier interface {
	StatusQuery(ctx context.Context) (lifecycle.State, error)
	HealthQuery(ctx context.Context) (lifecycle.Health, error)
}

// Report is a point-in-time view of one server. Health is set only for a
// running server.
type Report struct {
	Name   string           `json:"name"`
	Host   string           `json:"host"`
	Port   int              `json:"port"`
	State  lifecycle.State  `json:"state"`
	Health lifecycle.Health `json:"health,omitempty"`
}

// Address returns the host:port players connect to.
func (r Report) Address() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// Reporter builds reports for a single server identity.
type Reporter struct {
	querier  Querier
	identity lifecycle.Identity
}

func New(querier Querier, identity lifecycle.Identity) *Reporter {
	return &Reporter{
		querier:  querier,
		identity: identity,
	}
}

// Report queries the runtime. An unreachable runtime is returned as an
// error, never as a state.
func (r *Reporter) Report(ctx context.Context) (Report, error) {
	state, err := r.querier.StatusQuery(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("status report: %w", err)
	}

	report := Report{
		Name:  r.identity.Name(),
		Host:  r.identity.Host(),
		Port:  r.identity.Port(),
		State: state,
	}

	if state != lifecycle.StateRunning {
		return report, nil
	}

	report.Health, err = r.querier.HealthQuery(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("status report: %w", err)
	}

	return report, nil
}

var stateColors = map[lifecycle.State]lipgloss.Color{
	lifecycle.StateRunning: lipgloss.Color("10"),
	lifecycle.StateCreated: lipgloss.Color("12"),
	lifecycle.StateStopped: lipgloss.Color("11"),
	lifecycle.StateAbsent:  lipgloss.Color("8"),
}

var healthColors = map[lifecycle.Health]lipgloss.Color{
	lifecycle.HealthStarting:  lipgloss.Color("11"),
	lifecycle.HealthHealthy:   lipgloss.Color("10"),
	lifecycle.HealthUnhealthy: lipgloss.Color("9"),
}

// Render writes a one-line human readable report. A health check result
// follows the state in parentheses. Colors are applied only when w is a
// terminal that supports them.
func Render(w io.Writer, report Report) error {
	renderer := lipgloss.NewRenderer(w)

	name := renderer.NewStyle().Bold(true).Render(report.Name)
	state := renderer.NewStyle().
		Foreground(stateColors[report.State]).
		Render(report.State.String())

	if report.Health != "" && report.Health != lifecycle.HealthNone {
		state += " (" + renderer.NewStyle().
			Foreground(healthColors[report.Health]).
			Render(report.Health.String()) + ")"
	}

	_, err := fmt.Fprintf(w, "%s %s %s\n", name, state, report.Address())
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	return nil
}

// RenderJSON writes the report as a single JSON object.
func RenderJSON(w io.Writer, report Report) error {
	if err := json.NewEncoder(w).Encode(report); err != nil {
		return fmt.Errorf("render status json: %w", err)
	}

	return nil
}
