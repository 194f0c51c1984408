package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/minecraft-compose/internal/infra/pinger"
	"github.com/skillcoder/minecraft-compose/internal/logic/status"
)

type appResponse struct {
	State     string    `json:"state"`
	Uptime    string    `json:"uptime"`
	StartTime time.Time `json:"startTime"`
	UptimeSec float64   `json:"uptimeSeconds"`
}

type statusResponse struct {
	App    appResponse     `json:"app"`
	Server *status.Report  `json:"server,omitempty"`
	Error  string          `json:"error,omitempty"`
	Pings  []pinger.Status `json:"pings"`
}

// handleStatus reports the process state together with a live container
// report. An unreachable runtime answers 503 with the error in the body.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	uptime := s.appState.GetUptime()

	response := statusResponse{
		App: appResponse{
			State:     string(s.appState.GetState()),
			Uptime:    uptime.String(),
			StartTime: s.appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
		},
		Pings: s.appState.Pings(),
	}

	code := http.StatusOK

	reportCtx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	report, err := s.reporter.Report(reportCtx)
	if err != nil {
		code = http.StatusServiceUnavailable
		response.Error = err.Error()

		logger.WarnContext(ctx, "status report failed", "reason", err)
	} else {
		response.Server = &report
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode status response",
			"error", err,
		)
	}
}
