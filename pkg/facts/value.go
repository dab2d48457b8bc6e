package facts

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the type carried by a Value.
// There is no automatic coercion between kinds.
type Kind string

const (
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindString  Kind = "string"
)

// Value is a tagged union over the three fact value kinds: numbers,
// booleans, and string tokens. The zero Value is not valid; construct
// values with Number, Boolean, or String, or unmarshal from JSON/YAML.
type Value struct {
	Kind Kind

	// Exactly one of the following is meaningful, selected by Kind.
	Num  float64
	Bool bool
	Str  string
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Boolean returns a boolean Value.
func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// String returns a string-token Value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IsNumber reports whether the value carries a number.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// IsBoolean reports whether the value carries a boolean.
func (v Value) IsBoolean() bool { return v.Kind == KindBoolean }

// IsString reports whether the value carries a string token.
func (v Value) IsString() bool { return v.Kind == KindString }

// Equal reports whether two values of the same kind are equal.
// The second return is false when the kinds differ; callers decide
// whether that is an error (the engine treats it as one).
func (v Value) Equal(o Value) (bool, bool) {
	if v.Kind != o.Kind {
		return false, false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num, true
	case KindBoolean:
		return v.Bool == o.Bool, true
	case KindString:
		return v.Str == o.Str, true
	default:
		return false, false
	}
}

// Display returns the value rendered for humans (logs, CLI output).
func (v Value) Display() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	default:
		return fmt.Sprintf("<invalid value kind %q>", string(v.Kind))
	}
}

// interfaceValue returns the underlying value for marshalling.
func (v Value) interfaceValue() (interface{}, error) {
	switch v.Kind {
	case KindNumber:
		return v.Num, nil
	case KindBoolean:
		return v.Bool, nil
	case KindString:
		return v.Str, nil
	default:
		return nil, fmt.Errorf("invalid value kind %q", string(v.Kind))
	}
}

// fromInterface builds a Value from a decoded JSON/YAML scalar.
func fromInterface(raw interface{}) (Value, error) {
	switch val := raw.(type) {
	case bool:
		return Boolean(val), nil
	case float64:
		return Number(val), nil
	case int:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil
	case string:
		return String(val), nil
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", val.String(), err)
		}
		return Number(n), nil
	default:
		return Value{}, fmt.Errorf("unsupported fact value type %T (want number, boolean, or string)", raw)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	iv, err := v.interfaceValue()
	if err != nil {
		return nil, err
	}
	return json.Marshal(iv)
}

// UnmarshalJSON implements json.Unmarshaler. Numbers become KindNumber,
// booleans KindBoolean, strings KindString; anything else is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := fromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.interfaceValue()
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := fromInterface(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = parsed
	return nil
}

// ParseLiteral interprets a raw token from a CLI flag or form field as
// a Value: "true"/"false" become booleans, anything numeric becomes a
// number, and everything else stays a string token.
func ParseLiteral(raw string) Value {
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return Boolean(b)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	return String(raw)
}
