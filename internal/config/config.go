package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the serve and estimate commands look for
// configuration when no path is given.
const DefaultPath = "./croncal.toml"

// Load reads configuration from a TOML file, applies defaults and expands
// environment variable references.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	expandVars(&cfg)

	return &cfg, nil
}

// Default returns a configuration with every default applied, for commands
// that run without a config file.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Validate checks the configuration for errors. All problems are reported
// at once rather than failing on the first.
func (c *Config) Validate() []error {
	var errors []error

	if c.Jobs.Path == "" {
		errors = append(errors, fmt.Errorf("jobs.path is required"))
	}

	if c.HTTP.Listen == "" {
		errors = append(errors, fmt.Errorf("http.listen is required"))
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errors = append(errors, fmt.Errorf("metrics.namespace is required when metrics are enabled"))
	}

	if c.Logging.Level == "" {
		errors = append(errors, fmt.Errorf("logging.level is required"))
	} else {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[strings.ToLower(c.Logging.Level)] {
			errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
		}
	}

	if c.Logging.Format == "" {
		errors = append(errors, fmt.Errorf("logging.format is required"))
	} else {
		validFormats := map[string]bool{"json": true, "text": true}
		if !validFormats[strings.ToLower(c.Logging.Format)] {
			errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
		}
	}

	if c.Logging.Output == "" {
		errors = append(errors, fmt.Errorf("logging.output is required"))
	}

	return errors
}

func applyDefaults(c *Config) {
	if c.Jobs.Path == "" {
		c.Jobs.Path = "./jobs.json"
	}

	if c.HTTP.Listen == "" {
		c.HTTP.Listen = ":8080"
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "croncal"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

func expandVars(c *Config) {
	c.Jobs.Path = expandHome(expandEnv(c.Jobs.Path))
	c.HTTP.Listen = expandEnv(c.HTTP.Listen)
	c.Logging.Output = expandEnv(c.Logging.Output)
}

// expandEnv expands a ${VAR} or ${VAR:default} reference.
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") {
		return s
	}

	end := strings.Index(s, "}")
	if end == -1 {
		return s
	}

	content := s[2:end]
	if parts := strings.SplitN(content, ":", 2); len(parts) == 2 {
		if val := os.Getenv(parts[0]); val != "" {
			return val
		}
		return parts[1]
	}

	return os.Getenv(content)
}

// expandHome expands a leading ~ in a path.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
