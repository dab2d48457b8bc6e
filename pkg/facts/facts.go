package facts

import (
	"fmt"
	"sort"
	"strings"
)

// Set maps fact names to their current values. A Set is built fresh for
// each evaluation and is never mutated by the engine.
type Set map[string]Value

// Lookup returns the value for a fact name and whether it is present.
func (s Set) Lookup(field string) (Value, bool) {
	v, ok := s[field]
	return v, ok
}

// Fields returns the fact names in sorted order, for deterministic
// logging and display.
func (s Set) Fields() []string {
	fields := make([]string, 0, len(s))
	for name := range s {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// String renders the set as "field=value" pairs in sorted field order.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, name := range s.Fields() {
		parts = append(parts, name+"="+s[name].Display())
	}
	return strings.Join(parts, " ")
}

// ParsePair parses a "name=value" token (CLI --fact flags) into a fact
// name and Value, using ParseLiteral for the value side.
func ParsePair(pair string) (string, Value, error) {
	name, raw, ok := strings.Cut(pair, "=")
	if !ok {
		return "", Value{}, fmt.Errorf("invalid fact %q (want name=value)", pair)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Value{}, fmt.Errorf("invalid fact %q: empty name", pair)
	}
	return name, ParseLiteral(strings.TrimSpace(raw)), nil
}
