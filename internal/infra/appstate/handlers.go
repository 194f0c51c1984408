package appstate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// HandleHealthz serves the liveness check.
func HandleHealthz(logger *slog.Logger, checker healthChecker) http.HandlerFunc {
	return checkHandler(logger, "health", func() error {
		if !checker.IsHealthy() {
			return ErrNotRunning
		}

		return nil
	})
}

// HandleReadyz serves the readiness check. A failing check answers 503
// with the reason as the body.
func HandleReadyz(logger *slog.Logger, checker readyChecker) http.HandlerFunc {
	return checkHandler(logger, "readiness", checker.Readiness)
}

func checkHandler(logger *slog.Logger, kind string, check func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("check", kind, "traceID", middleware.GetReqID(ctx))

		if err := check(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			log.DebugContext(ctx, "check failed", "reason", err)

			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
