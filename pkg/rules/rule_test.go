package rules

import (
	"testing"

	"gopkg.in/yaml.v3"

	"frostline/breeze/pkg/facts"
)

func TestOperatorValid(t *testing.T) {
	for _, op := range Operators() {
		if !op.Valid() {
			t.Errorf("Operator(%q).Valid() = false, want true", op)
		}
	}

	for _, op := range []Operator{"", "=", "=>", "contains", "in"} {
		if op.Valid() {
			t.Errorf("Operator(%q).Valid() = true, want false", op)
		}
	}
}

func TestOperatorOrdering(t *testing.T) {
	ordering := map[Operator]bool{
		OpEqual:        false,
		OpNotEqual:     false,
		OpGreaterThan:  true,
		OpGreaterEqual: true,
		OpLessThan:     true,
		OpLessEqual:    true,
	}
	for op, want := range ordering {
		if got := op.Ordering(); got != want {
			t.Errorf("Operator(%q).Ordering() = %v, want %v", op, got, want)
		}
	}
}

func TestRuleUnmarshalYAML(t *testing.T) {
	input := `
name: "Hot & humid (occupied) → cool strong"
priority: 80
conditions:
  - {field: occupancy, op: "==", value: OCCUPIED}
  - {field: temperature, op: ">=", value: 30}
  - {field: humidity, op: ">=", value: 70}
action:
  mode: COOL
  fan_speed: HIGH
  setpoint: 23
  reason: Hot and humid
`
	var rule Rule
	if err := yaml.Unmarshal([]byte(input), &rule); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if rule.Priority != 80 {
		t.Errorf("Priority = %d, want 80", rule.Priority)
	}
	if len(rule.Conditions) != 3 {
		t.Fatalf("len(Conditions) = %d, want 3", len(rule.Conditions))
	}
	if rule.Conditions[0].Value != facts.String("OCCUPIED") {
		t.Errorf("condition 0 value = %+v, want string OCCUPIED", rule.Conditions[0].Value)
	}
	if rule.Conditions[1].Operator != OpGreaterEqual || rule.Conditions[1].Value != facts.Number(30) {
		t.Errorf("condition 1 = %+v, want temperature >= 30", rule.Conditions[1])
	}
	if rule.Action.Mode != ModeCool || rule.Action.FanSpeed != FanHigh {
		t.Errorf("action = %+v, want COOL/HIGH", rule.Action)
	}
	if rule.Action.Setpoint == nil || *rule.Action.Setpoint != 23 {
		t.Errorf("setpoint = %v, want 23", rule.Action.Setpoint)
	}
}

func TestActionSetpointDisplay(t *testing.T) {
	sp := 24.0
	withSetpoint := Action{Mode: ModeCool, Setpoint: &sp}
	if got := withSetpoint.SetpointDisplay(); got != "24" {
		t.Errorf("SetpointDisplay() = %q, want %q", got, "24")
	}

	off := Action{Mode: ModeOff}
	if got := off.SetpointDisplay(); got != "-" {
		t.Errorf("SetpointDisplay() = %q, want %q", got, "-")
	}
}

func TestConditionString(t *testing.T) {
	cond := Condition{Field: "temperature", Operator: OpGreaterEqual, Value: facts.Number(28)}
	if got, want := cond.String(), "temperature >= 28"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
