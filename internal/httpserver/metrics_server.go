package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMetricsPort = "9090"

// MetricsServer serves Prometheus metrics on a dedicated port.
type MetricsServer struct {
	*listener

	gatherer prometheus.Gatherer
}

// NewMetricsServer creates a metrics server for GET /metrics. A nil gatherer
// serves the default registry.
func NewMetricsServer(logger *slog.Logger, gatherer prometheus.Gatherer, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &MetricsServer{
		listener: newListener("metrics-server", logger, port),
		gatherer: gatherer,
	}
}

// Handler returns the /metrics mux.
func (s *MetricsServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return mux
}

// Start opens the port and serves in a goroutine.
func (s *MetricsServer) Start(ctx context.Context) error {
	return s.serve(ctx, s.Handler())
}
