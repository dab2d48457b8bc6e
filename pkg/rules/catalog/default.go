package catalog

import (
	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

func setpoint(v float64) *float64 {
	return &v
}

// Default returns the built-in rule catalog: the product's business
// policy for deciding the air-conditioner mode from home conditions.
// Listing order only matters for equal-priority ties; matching itself
// considers priority alone.
func Default() []*rules.Rule {
	return []*rules.Rule{
		{
			Name:     "Windows open → turn AC off",
			Priority: 100,
			Conditions: []rules.Condition{
				{Field: "windows_open", Operator: rules.OpEqual, Value: facts.Boolean(true)},
			},
			Action: rules.Action{
				Mode:     rules.ModeOff,
				FanSpeed: rules.FanLow,
				Reason:   "Windows are open",
			},
		},
		{
			Name:     "No one home → eco mode",
			Priority: 90,
			Conditions: []rules.Condition{
				{Field: "occupancy", Operator: rules.OpEqual, Value: facts.String("EMPTY")},
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(24)},
			},
			Action: rules.Action{
				Mode:     rules.ModeEco,
				FanSpeed: rules.FanLow,
				Setpoint: setpoint(27),
				Reason:   "Home empty; save energy",
			},
		},
		{
			Name:     "Too cold → turn off",
			Priority: 85,
			Conditions: []rules.Condition{
				{Field: "temperature", Operator: rules.OpLessEqual, Value: facts.Number(22)},
			},
			Action: rules.Action{
				Mode:     rules.ModeOff,
				FanSpeed: rules.FanLow,
				Reason:   "Already cold",
			},
		},
		{
			Name:     "Hot & humid (occupied) → cool strong",
			Priority: 80,
			Conditions: []rules.Condition{
				{Field: "occupancy", Operator: rules.OpEqual, Value: facts.String("OCCUPIED")},
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(30)},
				{Field: "humidity", Operator: rules.OpGreaterEqual, Value: facts.Number(70)},
			},
			Action: rules.Action{
				Mode:     rules.ModeCool,
				FanSpeed: rules.FanHigh,
				Setpoint: setpoint(23),
				Reason:   "Hot and humid",
			},
		},
		{
			Name:     "Night (occupied) → sleep mode",
			Priority: 75,
			Conditions: []rules.Condition{
				{Field: "occupancy", Operator: rules.OpEqual, Value: facts.String("OCCUPIED")},
				{Field: "time_of_day", Operator: rules.OpEqual, Value: facts.String("NIGHT")},
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(26)},
			},
			Action: rules.Action{
				Mode:     rules.ModeSleep,
				FanSpeed: rules.FanLow,
				Setpoint: setpoint(26),
				Reason:   "Night comfort",
			},
		},
		{
			Name:     "Hot (occupied) → cool",
			Priority: 70,
			Conditions: []rules.Condition{
				{Field: "occupancy", Operator: rules.OpEqual, Value: facts.String("OCCUPIED")},
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(28)},
			},
			Action: rules.Action{
				Mode:     rules.ModeCool,
				FanSpeed: rules.FanMedium,
				Setpoint: setpoint(24),
				Reason:   "Temperature high",
			},
		},
		{
			Name:     "Slightly warm (occupied) → gentle cool",
			Priority: 60,
			Conditions: []rules.Condition{
				{Field: "occupancy", Operator: rules.OpEqual, Value: facts.String("OCCUPIED")},
				{Field: "temperature", Operator: rules.OpGreaterEqual, Value: facts.Number(26)},
				{Field: "temperature", Operator: rules.OpLessThan, Value: facts.Number(28)},
			},
			Action: rules.Action{
				Mode:     rules.ModeCool,
				FanSpeed: rules.FanLow,
				Setpoint: setpoint(25),
				Reason:   "Slightly warm",
			},
		},
	}
}
