package rules

import (
	"fmt"

	"frostline/breeze/pkg/facts"
)

// Condition is a single comparison test against one fact. The fact
// value is the left operand: facts[Field] <Operator> Value.
type Condition struct {
	Field    string      `yaml:"field" json:"field"`
	Operator Operator    `yaml:"op" json:"op"`
	Value    facts.Value `yaml:"value" json:"value"`
}

// String renders the condition for logs and validation messages.
func (c Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Field, c.Operator, c.Value.Display())
}

// Mode is the air-conditioner operating mode set by an action.
type Mode string

const (
	ModeOff   Mode = "OFF"
	ModeEco   Mode = "ECO"
	ModeCool  Mode = "COOL"
	ModeSleep Mode = "SLEEP"
)

// Valid reports whether the mode is one of the known operating modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeOff, ModeEco, ModeCool, ModeSleep:
		return true
	default:
		return false
	}
}

// FanSpeed is the fan setting carried by an action.
type FanSpeed string

const (
	FanLow    FanSpeed = "LOW"
	FanMedium FanSpeed = "MEDIUM"
	FanHigh   FanSpeed = "HIGH"
)

// Valid reports whether the fan speed is one of the known settings.
func (f FanSpeed) Valid() bool {
	switch f {
	case FanLow, FanMedium, FanHigh:
		return true
	default:
		return false
	}
}

// Action is the decision payload returned verbatim when its owning rule
// wins. The engine never interprets its contents. Setpoint is nil for
// modes without a target temperature (OFF).
type Action struct {
	Mode     Mode     `yaml:"mode" json:"mode"`
	FanSpeed FanSpeed `yaml:"fan_speed" json:"fan_speed"`
	Setpoint *float64 `yaml:"setpoint,omitempty" json:"setpoint,omitempty"`
	Reason   string   `yaml:"reason" json:"reason"`
}

// SetpointDisplay renders the setpoint for humans, "-" when unset.
func (a Action) SetpointDisplay() string {
	if a.Setpoint == nil {
		return "-"
	}
	return facts.Number(*a.Setpoint).Display()
}

// Rule is a named, prioritized bundle of AND-ed conditions plus the
// action to apply when all of them hold. Higher priority wins; ties are
// broken by position in the rule set (earlier wins).
type Rule struct {
	Name       string      `yaml:"name" json:"name"`
	Priority   int         `yaml:"priority" json:"priority"`
	Conditions []Condition `yaml:"conditions" json:"conditions"`
	Action     Action      `yaml:"action" json:"action"`
}

// HasConditions reports whether the rule has at least one condition.
// A rule without conditions matches unconditionally.
func (r *Rule) HasConditions() bool {
	return len(r.Conditions) > 0
}
