package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"frostline/breeze/pkg/cli"
	"frostline/breeze/pkg/config"
	"frostline/breeze/pkg/rules"
	"frostline/breeze/pkg/rules/catalog"
	"frostline/breeze/pkg/rules/engine"
	"frostline/breeze/pkg/server"
	"frostline/breeze/pkg/telemetry/logging"
	"frostline/breeze/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	rulesPath     string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Breeze API server",
	Long: `Start the Breeze API server with the specified configuration.

The server exposes the decision endpoint, rule set introspection,
health checks, and Prometheus metrics. When rule watching is enabled
the catalog file is reloaded on change without a restart.

Examples:
  # Start with default config
  breeze run

  # Start with custom config
  breeze run --config /etc/breeze/config.yaml

  # Override listen address
  breeze run --listen 0.0.0.0:8600

  # Validate config without starting server
  breeze run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&runFlags.rulesPath, "rules", "", "override rule catalog file path")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

// loadRunConfig loads the configuration file with environment
// overrides. A missing file is only an error when --config was set
// explicitly; otherwise the defaults apply.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if runFlags.rulesPath != "" {
		cfg.Rules.Path = runFlags.rulesPath
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Telemetry.Logging, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	// Load the rule catalog: from file when configured, built-in
	// defaults otherwise.
	var ruleSet []*rules.Rule
	if cfg.Rules.Path != "" {
		ruleSet, err = catalog.Load(cfg.Rules.Path)
		if err != nil {
			return fmt.Errorf("failed to load rule catalog: %w", err)
		}
		logger.Info("rule catalog loaded", "path", cfg.Rules.Path, "rule_count", len(ruleSet))
	} else {
		ruleSet = catalog.Default()
		logger.Info("using built-in rule catalog", "rule_count", len(ruleSet))
	}

	var engineMetrics *metrics.EngineMetrics
	if cfg.Telemetry.Metrics.Enabled {
		engineMetrics = metrics.NewEngineMetrics(cfg.Telemetry.Metrics.Namespace, nil)
	}

	var m engine.Metrics
	if engineMetrics != nil {
		m = engineMetrics
	}
	evaluator := engine.NewEvaluator(ruleSet, logger, m)

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	// Hot-reload the catalog on file change when enabled.
	if cfg.Rules.Watch && cfg.Rules.Path != "" {
		watcher, err := catalog.NewWatcher(cfg.Rules.Path, cfg.Rules.WatchDebounce, logger)
		if err != nil {
			return fmt.Errorf("failed to create catalog watcher: %w", err)
		}
		go func() {
			if err := watcher.Watch(ctx, func(ruleSet []*rules.Rule) error {
				evaluator.Reload(ruleSet)
				return nil
			}); err != nil {
				logger.Error("catalog watcher stopped", "error", err)
			}
		}()
	}

	srv := server.NewServer(cfg.Server, evaluator, logger)
	if engineMetrics != nil {
		srv.MountMetrics(cfg.Telemetry.Metrics.Path, engineMetrics.Handler())
	}

	return srv.Start(ctx)
}
