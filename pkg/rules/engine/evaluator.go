package engine

import (
	"log/slog"
	"sync"
	"time"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

// Evaluation outcome labels reported to metrics.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics receives evaluation outcomes. The telemetry/metrics package
// provides the Prometheus implementation; a nil Metrics disables
// recording.
type Metrics interface {
	RecordEvaluation(outcome string, duration time.Duration)
	RecordHit(rule string)
	RecordMiss(rule string)
}

// Evaluator wraps the pure evaluation functions with a swappable
// rule set, structured logging, and metrics. The rule set is replaced
// atomically on reload and read under a shared lock, so evaluations
// from concurrent callers never observe a partially updated catalog.
type Evaluator struct {
	mu      sync.RWMutex
	ruleSet []*rules.Rule

	logger  *slog.Logger
	metrics Metrics
}

// NewEvaluator creates an evaluator over the given rule set.
// logger may be nil (defaults to slog.Default); metrics may be nil.
func NewEvaluator(ruleSet []*rules.Rule, logger *slog.Logger, metrics Metrics) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		ruleSet: ruleSet,
		logger:  logger,
		metrics: metrics,
	}
}

// Evaluate runs the current rule set against the facts, logging the
// decision and recording metrics.
func (e *Evaluator) Evaluate(set facts.Set) (*Decision, error) {
	ruleSet := e.Rules()
	start := time.Now()

	decision, err := Run(set, ruleSet)
	elapsed := time.Since(start)

	if err != nil {
		e.record(OutcomeError, elapsed)
		e.logger.Error("rule evaluation failed",
			"error", err,
			"facts", set.String(),
		)
		return nil, err
	}

	if e.metrics != nil {
		fired := make(map[string]bool, len(decision.Matched))
		for _, rule := range decision.Matched {
			fired[rule.Name] = true
			e.metrics.RecordHit(rule.Name)
		}
		for _, rule := range ruleSet {
			if !fired[rule.Name] {
				e.metrics.RecordMiss(rule.Name)
			}
		}
	}

	if decision.Fallback() {
		e.record(OutcomeFallback, elapsed)
		e.logger.Info("no rule matched, applying fallback",
			"mode", decision.Action.Mode,
			"facts", set.String(),
		)
		return decision, nil
	}

	e.record(OutcomeMatched, elapsed)
	e.logger.Info("rule evaluation complete",
		"winner", decision.Matched[0].Name,
		"priority", decision.Matched[0].Priority,
		"mode", decision.Action.Mode,
		"matched_count", len(decision.Matched),
	)
	return decision, nil
}

// Rules returns a copy of the current rule set for introspection.
func (e *Evaluator) Rules() []*rules.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ruleSet := make([]*rules.Rule, len(e.ruleSet))
	copy(ruleSet, e.ruleSet)
	return ruleSet
}

// Reload atomically replaces the rule set. Used by the catalog watcher
// when the rules file changes on disk.
func (e *Evaluator) Reload(ruleSet []*rules.Rule) {
	e.mu.Lock()
	e.ruleSet = ruleSet
	e.mu.Unlock()

	e.logger.Info("rule set reloaded", "rule_count", len(ruleSet))
}

func (e *Evaluator) record(outcome string, elapsed time.Duration) {
	if e.metrics != nil {
		e.metrics.RecordEvaluation(outcome, elapsed)
	}
}
