package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/minecraft-compose/internal/infra/appstate"
)

const (
	defaultPort = "8080"

	// statusTimeout bounds the runtime query behind /-/status.
	statusTimeout = 3 * time.Second
)

// Server serves the health, readiness and status endpoints.
type Server struct {
	*listener

	appState appstater
	reporter reporter
}

// New creates the status HTTP server for serve mode.
func New(logger *slog.Logger, appState appstater, reporter reporter, port string) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		listener: newListener("http-server", logger, port),
		appState: appState,
		reporter: reporter,
	}
}

// Handler returns the router serving the status endpoints.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", s.handleStatus)

	return router
}

// Start opens the port and serves in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(ctx, s.Handler())
}
