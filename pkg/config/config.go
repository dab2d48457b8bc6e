package config

import "time"

// Config is the root configuration for the Breeze service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Rules     RulesConfig     `yaml:"rules"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig configures the HTTP decision API.
type ServerConfig struct {
	// ListenAddress is the host:port the server binds to.
	ListenAddress string `yaml:"listen_address"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// RulesConfig configures where the rule catalog comes from.
type RulesConfig struct {
	// Path is the YAML catalog file. Empty means the built-in default
	// catalog.
	Path string `yaml:"path"`

	// Watch reloads the catalog when the file changes. Ignored when
	// Path is empty.
	Watch bool `yaml:"watch"`

	// WatchDebounce is the quiet period after a file event before the
	// catalog is reloaded.
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// TelemetryConfig configures logging and metrics.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path the metrics handler is mounted on.
	Path string `yaml:"path"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}
