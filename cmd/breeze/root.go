package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "breeze",
	Short: "Breeze - rule-based climate decision engine",
	Long: `Breeze decides the air-conditioner mode for a home from a prioritized
rule catalog and the current facts (temperature, humidity, occupancy, ...).

It can run as an HTTP API server or decide once from the command line.
Rules are AND-ed condition lists with a priority; the highest-priority
matching rule wins, and a safe OFF fallback applies when nothing matches.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
