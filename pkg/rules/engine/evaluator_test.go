package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

type recordingMetrics struct {
	evaluations map[string]int
	hits        map[string]int
	misses      map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		evaluations: make(map[string]int),
		hits:        make(map[string]int),
		misses:      make(map[string]int),
	}
}

func (m *recordingMetrics) RecordEvaluation(outcome string, _ time.Duration) {
	m.evaluations[outcome]++
}
func (m *recordingMetrics) RecordHit(rule string)  { m.hits[rule]++ }
func (m *recordingMetrics) RecordMiss(rule string) { m.misses[rule]++ }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func evaluatorRules() []*rules.Rule {
	return []*rules.Rule{
		{
			Name:     "hot",
			Priority: 70,
			Conditions: []rules.Condition{
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(28)},
			},
			Action: coolAction("hot"),
		},
		{
			Name:     "cold",
			Priority: 85,
			Conditions: []rules.Condition{
				{Field: "temperature", Operator: rules.OpLessEqual, Value: facts.Number(22)},
			},
			Action: rules.Action{Mode: rules.ModeOff, FanSpeed: rules.FanLow, Reason: "cold"},
		},
	}
}

func TestEvaluatorRecordsOutcomes(t *testing.T) {
	metrics := newRecordingMetrics()
	ev := NewEvaluator(evaluatorRules(), quietLogger(), metrics)

	decision, err := ev.Evaluate(facts.Set{"temperature": facts.Number(30)})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if decision.Action.Reason != "hot" {
		t.Errorf("reason = %q, want hot", decision.Action.Reason)
	}
	if metrics.evaluations[OutcomeMatched] != 1 {
		t.Errorf("matched evaluations = %d, want 1", metrics.evaluations[OutcomeMatched])
	}
	if metrics.hits["hot"] != 1 || metrics.misses["cold"] != 1 {
		t.Errorf("hits/misses = %v / %v, want hot hit and cold miss", metrics.hits, metrics.misses)
	}

	if _, err := ev.Evaluate(facts.Set{"temperature": facts.Number(25)}); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if metrics.evaluations[OutcomeFallback] != 1 {
		t.Errorf("fallback evaluations = %d, want 1", metrics.evaluations[OutcomeFallback])
	}

	if _, err := ev.Evaluate(facts.Set{}); err == nil {
		t.Fatal("Evaluate() with empty facts should fail with missing fact")
	}
	if metrics.evaluations[OutcomeError] != 1 {
		t.Errorf("error evaluations = %d, want 1", metrics.evaluations[OutcomeError])
	}
}

func TestEvaluatorReload(t *testing.T) {
	ev := NewEvaluator(evaluatorRules(), quietLogger(), nil)

	if got := len(ev.Rules()); got != 2 {
		t.Fatalf("len(Rules()) = %d, want 2", got)
	}

	ev.Reload([]*rules.Rule{
		{Name: "always", Priority: 1, Action: coolAction("always")},
	})

	decision, err := ev.Evaluate(facts.Set{})
	if err != nil {
		t.Fatalf("Evaluate() after reload error = %v", err)
	}
	if decision.Action.Reason != "always" {
		t.Errorf("reason = %q, want rule from reloaded set", decision.Action.Reason)
	}
}

func TestEvaluatorRulesReturnsCopy(t *testing.T) {
	ev := NewEvaluator(evaluatorRules(), quietLogger(), nil)

	ruleSet := ev.Rules()
	ruleSet[0] = nil

	if ev.Rules()[0] == nil {
		t.Error("mutating the returned slice must not affect the evaluator")
	}
}
