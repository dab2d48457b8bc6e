package engine

import (
	"fmt"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
)

// MissingFactError indicates a condition referenced a fact absent from
// the supplied fact set. This is a configuration or data error, not a
// business outcome: it aborts the evaluation instead of counting as a
// non-match.
type MissingFactError struct {
	Field string
}

// Error returns the error message.
func (e *MissingFactError) Error() string {
	return fmt.Sprintf("fact %q not present in fact set", e.Field)
}

// TypeMismatchError indicates a comparison applied to incomparable
// operand kinds: an ordering operator on non-numeric operands, or
// equality across different kinds.
type TypeMismatchError struct {
	Field     string
	Operator  rules.Operator
	FactKind  facts.Kind
	ValueKind facts.Kind
}

// Error returns the error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch on fact %q: cannot apply %s to %s and %s",
		e.Field, e.Operator, e.FactKind, e.ValueKind)
}

// UnknownOperatorError indicates a condition used an operator outside
// the supported set.
type UnknownOperatorError struct {
	Field    string
	Operator rules.Operator
}

// Error returns the error message.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q on fact %q", e.Operator, e.Field)
}
