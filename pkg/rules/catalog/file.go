package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frostline/breeze/pkg/rules"
)

// File is the on-disk catalog document.
type File struct {
	Rules []*rules.Rule `yaml:"rules"`
}

// ValidationError reports everything wrong with a catalog in one pass,
// so operators fix a file in one round trip.
type ValidationError struct {
	Errors []string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid catalog: %s", e.Errors[0])
	}
	return fmt.Sprintf("invalid catalog: %d errors: %v", len(e.Errors), e.Errors)
}

// Load reads a YAML catalog file and validates it.
func Load(path string) ([]*rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}

	if err := Validate(file.Rules); err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", path, err)
	}

	return file.Rules, nil
}

// Validate checks a rule set for the mistakes a hand-edited catalog
// can contain: duplicate or empty names, unknown operators, unknown
// modes or fan speeds, conditions without a field. An empty condition
// list is legal (the rule matches unconditionally).
func Validate(ruleSet []*rules.Rule) error {
	var errs []string

	if len(ruleSet) == 0 {
		errs = append(errs, "no rules defined")
	}

	seen := make(map[string]bool, len(ruleSet))
	for i, rule := range ruleSet {
		if rule == nil {
			errs = append(errs, fmt.Sprintf("rule %d: empty rule entry", i))
			continue
		}
		if rule.Name == "" {
			errs = append(errs, fmt.Sprintf("rule %d: missing name", i))
		} else if seen[rule.Name] {
			errs = append(errs, fmt.Sprintf("rule %d: duplicate name %q", i, rule.Name))
		}
		seen[rule.Name] = true

		for j, cond := range rule.Conditions {
			if cond.Field == "" {
				errs = append(errs, fmt.Sprintf("rule %q condition %d: missing field", rule.Name, j))
			}
			if !cond.Operator.Valid() {
				errs = append(errs, fmt.Sprintf("rule %q condition %d: unknown operator %q", rule.Name, j, cond.Operator))
			}
		}

		if !rule.Action.Mode.Valid() {
			errs = append(errs, fmt.Sprintf("rule %q: unknown mode %q", rule.Name, rule.Action.Mode))
		}
		if !rule.Action.FanSpeed.Valid() {
			errs = append(errs, fmt.Sprintf("rule %q: unknown fan speed %q", rule.Name, rule.Action.FanSpeed))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
