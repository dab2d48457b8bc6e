package rules

// Operator is a comparison operator in a condition. The set is closed:
// equality, inequality, and the four numeric orderings.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreaterThan  Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLessThan     Operator = "<"
	OpLessEqual    Operator = "<="
)

// Operators lists all supported operators.
func Operators() []Operator {
	return []Operator{OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual}
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		return true
	default:
		return false
	}
}

// Ordering reports whether op requires numeric operands.
func (op Operator) Ordering() bool {
	switch op {
	case OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		return true
	default:
		return false
	}
}
