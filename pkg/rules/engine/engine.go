package engine

import (
	"sort"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

// Decision is the result of one evaluation: the winning action and
// every rule that fired, ordered by the ranking that selected the
// winner (priority descending, original order on ties).
type Decision struct {
	Action  rules.Action  `json:"action"`
	Matched []*rules.Rule `json:"matched"`
}

// Fallback reports whether the decision came from the no-match
// fallback rather than a fired rule.
func (d *Decision) Fallback() bool {
	return len(d.Matched) == 0
}

// FallbackReason is the reason carried by the no-match fallback action.
const FallbackReason = "No rule matched"

// FallbackAction is the explicit policy applied when zero rules fire:
// the system turns off. This is a defined outcome, not an error.
func FallbackAction() rules.Action {
	return rules.Action{
		Mode:     rules.ModeOff,
		FanSpeed: rules.FanLow,
		Reason:   FallbackReason,
	}
}

// EvaluateCondition tests one fact against one condition. The fact
// value is the left operand. It fails with *MissingFactError when the
// field is absent and *TypeMismatchError when the operand kinds are not
// comparable under the operator.
func EvaluateCondition(set facts.Set, cond rules.Condition) (bool, error) {
	fact, ok := set.Lookup(cond.Field)
	if !ok {
		return false, &MissingFactError{Field: cond.Field}
	}
	return evaluateOperator(cond, fact)
}

// RuleMatches reports whether every condition of the rule holds for the
// fact set. Conditions are ANDed in order; an empty condition list
// matches unconditionally. The first condition error aborts.
func RuleMatches(set facts.Set, rule *rules.Rule) (bool, error) {
	for _, cond := range rule.Conditions {
		ok, err := EvaluateCondition(set, cond)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Run evaluates the rule set against the facts and selects the
// highest-priority match. Ties are broken by position in the rule set:
// the stable sort keeps the first-listed rule ahead of later rules with
// equal priority. Zero matches yield FallbackAction and an empty
// matched list. Any condition error aborts the whole evaluation; no
// rule is silently skipped.
func Run(set facts.Set, ruleSet []*rules.Rule) (*Decision, error) {
	var matched []*rules.Rule
	for _, rule := range ruleSet {
		ok, err := RuleMatches(set, rule)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, rule)
		}
	}

	if len(matched) == 0 {
		return &Decision{Action: FallbackAction(), Matched: []*rules.Rule{}}, nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	return &Decision{Action: matched[0].Action, Matched: matched}, nil
}
