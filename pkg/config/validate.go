package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Validate checks the configuration for values that would fail at
// startup or produce a confusing runtime.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Server.ListenAddress == "" {
		errs = append(errs, "server.listen_address must not be empty")
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, "server.read_timeout must not be negative")
	}
	if cfg.Server.WriteTimeout < 0 {
		errs = append(errs, "server.write_timeout must not be negative")
	}
	if cfg.Server.IdleTimeout < 0 {
		errs = append(errs, "server.idle_timeout must not be negative")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "server.shutdown_timeout must be positive")
	}
	if cfg.Server.MaxHeaderBytes < 0 {
		errs = append(errs, "server.max_header_bytes must not be negative")
	}

	if cfg.Rules.Watch && cfg.Rules.Path == "" {
		errs = append(errs, "rules.watch requires rules.path (the built-in catalog cannot be watched)")
	}
	if cfg.Rules.WatchDebounce < 0 {
		errs = append(errs, "rules.watch_debounce must not be negative")
	}

	if !validLogLevels[strings.ToLower(cfg.Telemetry.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("telemetry.logging.level %q is not one of debug, info, warn, error", cfg.Telemetry.Logging.Level))
	}
	if !validLogFormats[strings.ToLower(cfg.Telemetry.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("telemetry.logging.format %q is not one of json, text", cfg.Telemetry.Logging.Format))
	}

	if cfg.Telemetry.Metrics.Enabled && !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
		errs = append(errs, fmt.Sprintf("telemetry.metrics.path %q must start with /", cfg.Telemetry.Metrics.Path))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
