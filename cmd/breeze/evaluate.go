package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
	"frostline/breeze/pkg/rules/catalog"
	"frostline/breeze/pkg/rules/engine"
)

var evaluateFlags struct {
	factPairs []string
	factsFile string
	rulesPath string
	format    string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Decide an action for a set of facts",
	Long: `Run the rule catalog once against the given facts and print the
decision.

Facts are given as repeated --fact name=value flags, or as a JSON file
via --facts. Values are parsed as booleans (true/false), then numbers,
then strings. The built-in catalog is used unless --rules points at a
catalog file.

Examples:
  # Decide from the command line
  breeze evaluate --fact temperature=31 --fact humidity=75 \
    --fact occupancy=OCCUPIED --fact windows_open=false --fact time_of_day=DAY

  # Decide from a facts file
  breeze evaluate --facts facts.json

  # Use a custom catalog and JSON output
  breeze evaluate --rules rules.yaml --facts facts.json --format json`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringArrayVar(&evaluateFlags.factPairs, "fact", nil, "fact as name=value (repeatable)")
	evaluateCmd.Flags().StringVar(&evaluateFlags.factsFile, "facts", "", "JSON file with facts")
	evaluateCmd.Flags().StringVar(&evaluateFlags.rulesPath, "rules", "", "rule catalog file (built-in catalog if empty)")
	evaluateCmd.Flags().StringVar(&evaluateFlags.format, "format", "text", "output format: text, json")
}

// buildFactSet merges facts from the JSON file (if any) with --fact
// flags; flags win on conflict.
func buildFactSet(factsFile string, pairs []string) (facts.Set, error) {
	set := facts.Set{}

	if factsFile != "" {
		data, err := os.ReadFile(factsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read facts file %q: %w", factsFile, err)
		}
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse facts file %q: %w", factsFile, err)
		}
	}

	for _, pair := range pairs {
		name, value, err := facts.ParsePair(pair)
		if err != nil {
			return nil, err
		}
		set[name] = value
	}

	return set, nil
}

func loadCatalog(path string) ([]*rules.Rule, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	set, err := buildFactSet(evaluateFlags.factsFile, evaluateFlags.factPairs)
	if err != nil {
		return err
	}

	ruleSet, err := loadCatalog(evaluateFlags.rulesPath)
	if err != nil {
		return err
	}

	decision, err := engine.Run(set, ruleSet)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	switch evaluateFlags.format {
	case "json":
		return printDecisionJSON(cmd, decision)
	case "text":
		printDecisionText(cmd, decision)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", evaluateFlags.format)
	}
}

func printDecisionJSON(cmd *cobra.Command, decision *engine.Decision) error {
	type matchedRule struct {
		Name     string `json:"name"`
		Priority int    `json:"priority"`
	}
	matched := make([]matchedRule, 0, len(decision.Matched))
	for _, rule := range decision.Matched {
		matched = append(matched, matchedRule{Name: rule.Name, Priority: rule.Priority})
	}

	out := struct {
		Action   rules.Action  `json:"action"`
		Matched  []matchedRule `json:"matched"`
		Fallback bool          `json:"fallback"`
	}{
		Action:   decision.Action,
		Matched:  matched,
		Fallback: decision.Fallback(),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printDecisionText(cmd *cobra.Command, decision *engine.Decision) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Mode:      %s\n", decision.Action.Mode)
	fmt.Fprintf(out, "Fan speed: %s\n", decision.Action.FanSpeed)
	fmt.Fprintf(out, "Setpoint:  %s\n", decision.Action.SetpointDisplay())
	fmt.Fprintf(out, "Reason:    %s\n", decision.Action.Reason)

	if decision.Fallback() {
		fmt.Fprintln(out, "Matched rules: none (fallback)")
		return
	}

	fmt.Fprintln(out, "Matched rules:")
	for _, rule := range decision.Matched {
		fmt.Fprintf(out, "  [%d] %s\n", rule.Priority, rule.Name)
	}
}
