// Package config loads nda CLI configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults that a config file may override.
type Config struct {
	// Seed is the default seed for random generation commands.
	Seed int64 `yaml:"seed"`

	// Workers is the CPU backend worker count; 0 means one per logical CPU.
	Workers int `yaml:"workers"`

	// LogLevel is the default log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Seed:     42,
		Workers:  0,
		LogLevel: "info",
	}
}

// Load reads a YAML config from path. A missing file is not an error:
// defaults are returned so the CLI works with zero setup.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	//nolint:gosec // G304: the path comes from a CLI flag, which is expected
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
