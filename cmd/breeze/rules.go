package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"frostline/breeze/pkg/cli"
	"frostline/breeze/pkg/rules/catalog"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule catalogs",
}

var rulesValidateFlags struct {
	file string
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rule catalog file",
	Long: `Check a rule catalog file for mistakes: duplicate or empty rule
names, unknown operators, unknown modes or fan speeds, and conditions
without a field. All problems are reported in one pass.

Examples:
  breeze rules validate --file rules.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rulesValidateFlags.file == "" {
			return fmt.Errorf("--file is required")
		}
		ruleSet, err := catalog.Load(rulesValidateFlags.file)
		if err != nil {
			return cli.NewCommandError("rules validate", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Catalog valid (%d rules)\n", len(ruleSet))
		return nil
	},
}

var rulesShowFlags struct {
	rulesPath string
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the rule catalog",
	Long: `Print the rule catalog in priority order. The built-in catalog is
shown unless --rules points at a catalog file.

Examples:
  breeze rules show
  breeze rules show --rules rules.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ruleSet, err := loadCatalog(rulesShowFlags.rulesPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, rule := range ruleSet {
			fmt.Fprintf(out, "[%d] %s\n", rule.Priority, rule.Name)
			if !rule.HasConditions() {
				fmt.Fprintln(out, "    when: always")
			}
			for _, cond := range rule.Conditions {
				fmt.Fprintf(out, "    when: %s\n", cond)
			}
			fmt.Fprintf(out, "    then: mode=%s fan=%s setpoint=%s (%s)\n",
				rule.Action.Mode, rule.Action.FanSpeed,
				rule.Action.SetpointDisplay(), rule.Action.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesShowCmd)

	rulesValidateCmd.Flags().StringVar(&rulesValidateFlags.file, "file", "", "catalog file to validate")
	rulesShowCmd.Flags().StringVar(&rulesShowFlags.rulesPath, "rules", "", "rule catalog file (built-in catalog if empty)")
}
