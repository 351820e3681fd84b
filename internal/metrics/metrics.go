// Package metrics exposes prometheus collectors for the engine: runs by
// strategy and outcome, nodes executed, and run duration. Collectors are
// registered on a package-level registry served by the app's ops server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the collector registry served on the ops /metrics endpoint.
var Registry = prometheus.NewRegistry()

var (
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strgraph_runs_total",
			Help: "Total number of compute runs, by strategy and outcome.",
		},
		[]string{"strategy", "outcome"},
	)
	nodesExecuted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "strgraph_nodes_executed_total",
			Help: "Total number of node executions.",
		},
	)
	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "strgraph_run_duration_seconds",
			Help: "Duration of compute runs, by strategy.",
		},
		[]string{"strategy"},
	)
)

func init() {
	Registry.MustRegister(runsTotal, nodesExecuted, runDuration)
}

// ObserveRun records one compute run.
func ObserveRun(strategy string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	runsTotal.WithLabelValues(strategy, outcome).Inc()
	runDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// NodeExecuted records one node execution.
func NodeExecuted() {
	nodesExecuted.Inc()
}
