package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results used as the "result" label.
const (
	ResultOK          = "ok"
	ResultRejected    = "rejected"
	ResultError       = "error"
	ResultUnavailable = "unavailable"
	ResultInterrupted = "interrupted"
)

// Scheduled restart outcomes used as the "outcome" label.
const (
	OutcomeRestarted = "restarted"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

var knownStates = []string{"absent", "created", "running", "stopped"}

var lifecycleOperationsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "mcc_lifecycle_operations_total",
		Help: "Total number of container lifecycle operations by operation and result.",
	},
	[]string{"operation", "result"},
)

var containerState = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "mcc_container_state",
		Help: "Last observed state of the server container (1 for the current state, 0 otherwise).",
	},
	[]string{"server", "state"},
)

var scheduledRestartsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "mcc_scheduled_restarts_total",
		Help: "Total number of scheduled restarts by outcome (restarted, skipped, failed).",
	},
	[]string{"server", "outcome"},
)

// RecordOperation counts one lifecycle operation outcome.
func RecordOperation(operation, result string) {
	lifecycleOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordContainerState sets the state gauge so exactly one state of the server reads 1.
func RecordContainerState(server, state string) {
	for _, known := range knownStates {
		value := 0.0
		if known == state {
			value = 1
		}

		containerState.WithLabelValues(server, known).Set(value)
	}
}

// RecordScheduledRestart counts one scheduled restart attempt.
func RecordScheduledRestart(server, outcome string) {
	scheduledRestartsTotal.WithLabelValues(server, outcome).Inc()
}
