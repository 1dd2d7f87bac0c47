// Package metrics exposes Prometheus collectors for dispatch outcomes.
// The collector is optional: a nil *Collector is safe to call and records
// nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arthur-debert/recordflow/pkg/types"
)

// Collector holds the dispatch-layer metrics.
type Collector struct {
	runs             *prometheus.CounterVec
	callbackFailures *prometheus.CounterVec
	loopAborts       *prometheus.CounterVec
	runDuration      *prometheus.HistogramVec
}

// NewCollector creates the dispatch metrics and registers them with the
// given registerer. Pass prometheus.DefaultRegisterer for the usual global
// registry, or a private registry in tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recordflow_runs_total",
				Help: "Supervisor runs by entity, phase and outcome",
			},
			[]string{"entity", "phase", "outcome"},
		),
		callbackFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recordflow_callback_failures_total",
				Help: "Phase callback failures by entity and phase",
			},
			[]string{"entity", "phase"},
		),
		loopAborts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recordflow_loop_aborts_total",
				Help: "Runs aborted by the loop guard, by entity",
			},
			[]string{"entity"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recordflow_run_duration_seconds",
				Help:    "Supervisor run duration by entity and phase",
				Buckets: prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
			[]string{"entity", "phase"},
		),
	}

	reg.MustRegister(c.runs, c.callbackFailures, c.loopAborts, c.runDuration)
	return c
}

// ObserveRun records one completed Run call.
func (c *Collector) ObserveRun(entity string, phase types.Phase, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(entity, phase.String(), outcome).Inc()
	c.runDuration.WithLabelValues(entity, phase.String()).Observe(elapsed.Seconds())
}

// CallbackFailure records one isolated callback failure.
func (c *Collector) CallbackFailure(entity string, phase types.Phase) {
	if c == nil {
		return
	}
	c.callbackFailures.WithLabelValues(entity, phase.String()).Inc()
}

// LoopAbort records one run aborted by the loop guard.
func (c *Collector) LoopAbort(entity string) {
	if c == nil {
		return
	}
	c.loopAborts.WithLabelValues(entity).Inc()
}
