package engine

import (
	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

// evaluateOperator applies a condition's operator to (fact, literal),
// with the fact value as the left operand. The operator set is closed,
// so dispatch is a plain switch rather than a function table.
func evaluateOperator(cond rules.Condition, fact facts.Value) (bool, error) {
	switch cond.Operator {
	case rules.OpEqual:
		return evaluateEqual(cond, fact)

	case rules.OpNotEqual:
		equal, err := evaluateEqual(cond, fact)
		if err != nil {
			return false, err
		}
		return !equal, nil

	case rules.OpGreaterThan:
		l, r, err := orderingOperands(cond, fact)
		if err != nil {
			return false, err
		}
		return l > r, nil

	case rules.OpGreaterEqual:
		l, r, err := orderingOperands(cond, fact)
		if err != nil {
			return false, err
		}
		return l >= r, nil

	case rules.OpLessThan:
		l, r, err := orderingOperands(cond, fact)
		if err != nil {
			return false, err
		}
		return l < r, nil

	case rules.OpLessEqual:
		l, r, err := orderingOperands(cond, fact)
		if err != nil {
			return false, err
		}
		return l <= r, nil

	default:
		return false, &UnknownOperatorError{Field: cond.Field, Operator: cond.Operator}
	}
}

// evaluateEqual compares two values of the same kind. Cross-kind
// equality is a type mismatch, not false: it signals a misconfigured
// rule or fact rather than a legitimate non-match.
func evaluateEqual(cond rules.Condition, fact facts.Value) (bool, error) {
	equal, ok := fact.Equal(cond.Value)
	if !ok {
		return false, &TypeMismatchError{
			Field:     cond.Field,
			Operator:  cond.Operator,
			FactKind:  fact.Kind,
			ValueKind: cond.Value.Kind,
		}
	}
	return equal, nil
}

// orderingOperands extracts numeric operands for <, <=, >, >=.
func orderingOperands(cond rules.Condition, fact facts.Value) (float64, float64, error) {
	if !fact.IsNumber() || !cond.Value.IsNumber() {
		return 0, 0, &TypeMismatchError{
			Field:     cond.Field,
			Operator:  cond.Operator,
			FactKind:  fact.Kind,
			ValueKind: cond.Value.Kind,
		}
	}
	return fact.Num, cond.Value.Num, nil
}
