package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, DefaultListenAddress)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if cfg.Telemetry.Logging.Level != "info" || cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("logging defaults = %q/%q, want info/json",
			cfg.Telemetry.Logging.Level, cfg.Telemetry.Logging.Format)
	}
	if cfg.Telemetry.Metrics.Path != "/metrics" || cfg.Telemetry.Metrics.Namespace != "breeze" {
		t.Errorf("metrics defaults = %q/%q, want /metrics/breeze",
			cfg.Telemetry.Metrics.Path, cfg.Telemetry.Metrics.Namespace)
	}

	// Defaults never overwrite explicit values.
	cfg = &Config{Server: ServerConfig{ListenAddress: "0.0.0.0:9000"}}
	ApplyDefaults(cfg)
	if cfg.Server.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("ListenAddress = %q, explicit value must survive defaults", cfg.Server.ListenAddress)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_address: "0.0.0.0:8601"
  read_timeout: 5s
rules:
  path: /etc/breeze/rules.yaml
  watch: true
telemetry:
  logging:
    level: debug
    format: text
  metrics:
    enabled: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:8601" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	// Omitted fields get defaults.
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("WriteTimeout = %v, want default %v", cfg.Server.WriteTimeout, DefaultWriteTimeout)
	}
	if !cfg.Rules.Watch || cfg.Rules.Path != "/etc/breeze/rules.yaml" {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("logging = %+v", cfg.Telemetry.Logging)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `
telemetry:
  logging:
    level: loud
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error = %v, want mention of logging.level", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_address: "127.0.0.1:8600"
`)

	t.Setenv("BREEZE_SERVER_LISTEN_ADDRESS", "0.0.0.0:9100")
	t.Setenv("BREEZE_RULES_PATH", "/tmp/rules.yaml")
	t.Setenv("BREEZE_RULES_WATCH", "true")
	t.Setenv("BREEZE_TELEMETRY_METRICS_ENABLED", "true")
	t.Setenv("BREEZE_SERVER_READ_TIMEOUT", "3s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9100" {
		t.Errorf("ListenAddress = %q, env override must win", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if !cfg.Rules.Watch || cfg.Rules.Path != "/tmp/rules.yaml" {
		t.Errorf("rules = %+v, want watch of /tmp/rules.yaml", cfg.Rules)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("metrics.enabled = false, env override must win")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "empty listen address",
			mutate:  func(c *Config) { c.Server.ListenAddress = "" },
			wantMsg: "listen_address",
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantMsg: "read_timeout",
		},
		{
			name:    "watch without path",
			mutate:  func(c *Config) { c.Rules.Watch = true },
			wantMsg: "rules.watch",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantMsg: "logging.format",
		},
		{
			name: "metrics path without slash",
			mutate: func(c *Config) {
				c.Telemetry.Metrics.Enabled = true
				c.Telemetry.Metrics.Path = "metrics"
			},
			wantMsg: "metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want substring %q", err, tt.wantMsg)
			}
		})
	}

	if err := Validate(DefaultConfig()); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v, want nil", err)
	}
}
