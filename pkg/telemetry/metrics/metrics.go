package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics tracks rule evaluation activity.
//
// Metrics:
//   - <ns>_evaluations_total: evaluations by outcome (matched, fallback, error)
//   - <ns>_evaluation_duration_seconds: evaluation latency
//   - <ns>_rule_hits_total: times a rule fired, by rule name
//   - <ns>_rule_misses_total: times a rule did not fire, by rule name
type EngineMetrics struct {
	registry *prometheus.Registry

	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	ruleHitsTotal      *prometheus.CounterVec
	ruleMissesTotal    *prometheus.CounterVec
}

// NewEngineMetrics creates and registers engine metrics. A nil registry
// gets a fresh private one (useful in tests and embedded use).
func NewEngineMetrics(namespace string, registry *prometheus.Registry) *EngineMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &EngineMetrics{
		registry: registry,

		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of rule evaluations by outcome",
			},
			[]string{"outcome"},
		),

		evaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of rule evaluation in seconds",
				// Evaluations are a linear scan over a small catalog;
				// expect microseconds.
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 12),
			},
		),

		ruleHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_hits_total",
				Help:      "Total number of times a rule fired",
			},
			[]string{"rule"},
		),

		ruleMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_misses_total",
				Help:      "Total number of times a rule did not fire",
			},
			[]string{"rule"},
		),
	}

	registry.MustRegister(
		m.evaluationsTotal,
		m.evaluationDuration,
		m.ruleHitsTotal,
		m.ruleMissesTotal,
	)

	return m
}

// Registry returns the registry the metrics are registered with.
func (m *EngineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordEvaluation records one evaluation with its outcome label.
func (m *EngineMetrics) RecordEvaluation(outcome string, duration time.Duration) {
	m.evaluationsTotal.WithLabelValues(outcome).Inc()
	m.evaluationDuration.Observe(duration.Seconds())
}

// RecordHit records that a rule fired.
func (m *EngineMetrics) RecordHit(rule string) {
	m.ruleHitsTotal.WithLabelValues(rule).Inc()
}

// RecordMiss records that a rule did not fire.
func (m *EngineMetrics) RecordMiss(rule string) {
	m.ruleMissesTotal.WithLabelValues(rule).Inc()
}
