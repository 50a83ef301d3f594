// internal/telemetry/metrics.go

// Package telemetry exposes Prometheus metrics for bot decisions, rollouts
// and model loading.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "schnapsen"

// Metrics groups the bot's collectors. A nil *Metrics is valid and records
// nothing, so callers never need to check whether telemetry is enabled.
type Metrics struct {
	// DecisionsTotal counts completed decisions by opponent archetype.
	DecisionsTotal *prometheus.CounterVec

	// DecisionDuration measures wall time per decision.
	DecisionDuration prometheus.Histogram

	// RolloutsTotal counts evaluated determinizations.
	RolloutsTotal prometheus.Counter

	// RolloutErrorsTotal counts rollouts that failed.
	RolloutErrorsTotal prometheus.Counter

	// ModelLoadsTotal counts model store reads by model name and result.
	ModelLoadsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DecisionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "decisions_total",
			Help:      "Decisions taken by the adaptive bot, by opponent archetype",
		}, []string{"archetype"}),
		DecisionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "decision_duration_seconds",
			Help:      "Time spent choosing a move",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
		RolloutsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "rollouts_total",
			Help:      "Determinized rollouts evaluated",
		}),
		RolloutErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "rollout_errors_total",
			Help:      "Rollouts that ended in an error",
		}),
		ModelLoadsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "loads_total",
			Help:      "Model store reads by model name and result",
		}, []string{"model", "result"}),
	}
}

// ObserveDecision records one finished decision.
func (m *Metrics) ObserveDecision(archetype string, d time.Duration) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(archetype).Inc()
	m.DecisionDuration.Observe(d.Seconds())
}

// AddRollouts records n evaluated rollouts.
func (m *Metrics) AddRollouts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RolloutsTotal.Add(float64(n))
}

// RolloutFailed records a failed rollout.
func (m *Metrics) RolloutFailed() {
	if m == nil {
		return
	}
	m.RolloutErrorsTotal.Inc()
}

// ModelLoaded records a model store read.
func (m *Metrics) ModelLoaded(name string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.ModelLoadsTotal.WithLabelValues(name, result).Inc()
}
