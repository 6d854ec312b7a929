// Package config loads the optional YAML run configuration. Every value has
// a flag counterpart on the command line; flags that were set explicitly win
// over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure parsed from a strawberry.yaml file.
type Config struct {
	// Input is the puzzle file to solve.
	Input string `yaml:"input"`
	// Output is the covering text file to append to.
	Output string `yaml:"output"`
	// Logging configures the slog backend.
	Logging LoggingConfig `yaml:"logging"`
	// Export configures the optional report artifacts.
	Export ExportConfig `yaml:"export"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path; empty logs to stderr.
	Path string `yaml:"path"`
}

// ExportConfig names the optional export targets; empty paths disable the
// corresponding export.
type ExportConfig struct {
	// PDF is the field-diagram report path.
	PDF string `yaml:"pdf"`
	// Labels is the QR greenhouse-label sheet path.
	Labels string `yaml:"labels"`
	// Xlsx is the workbook report path.
	Xlsx string `yaml:"xlsx"`
	// DXF is the layout drawing path.
	DXF string `yaml:"dxf"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:   "strawberries.txt",
		Output:  "optimal_covering.txt",
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and validates a YAML configuration file, layered over the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no run could use.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
