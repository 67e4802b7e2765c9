// Package config provides configuration loading and validation for croncal.
// It supports TOML configuration files with environment variable expansion,
// default values, and validation.
//
// Configuration structure:
//   - [jobs]: Path to the job-definition file (JSON or YAML)
//   - [http]: Listen address for the estimate API
//   - [metrics]: Prometheus metrics settings
//   - [logging]: Logging level, format, and output
//
// Environment variables can be referenced using ${VAR} or ${VAR:default}
// syntax, e.g. listen = "${CRONCAL_LISTEN::8080}".
package config

// Config represents the main application configuration.
type Config struct {
	Jobs    JobsConfig    `toml:"jobs"`
	HTTP    HTTPConfig    `toml:"http"`
	Metrics MetricsConfig `toml:"metrics"`
	Logging LoggingConfig `toml:"logging"`
}

// JobsConfig locates the job definitions the estimate surfaces serve.
type JobsConfig struct {
	Path string `toml:"path"`
}

// HTTPConfig configures the estimate API server.
type HTTPConfig struct {
	Listen string `toml:"listen"`
}

// MetricsConfig configures Prometheus instrumentation.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}
