package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config represents the optional rr-sim YAML defaults file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
// Nil pointer fields mean "not set in YAML" and leave the flag default in place.
type Config struct {
	LogLevel    *string     `yaml:"log_level"`
	Details     *bool       `yaml:"details"`
	Gantt       *bool       `yaml:"gantt"`
	ResultsPath *string     `yaml:"results_path"`
	Serve       ServeConfig `yaml:"serve"`
}

// ServeConfig holds the HTTP server defaults.
type ServeConfig struct {
	Listen         *string `yaml:"listen"`
	DefaultQuantum *int64  `yaml:"default_quantum"`
	MaxTicks       *int64  `yaml:"max_ticks"` // 0 = unlimited
}

// loadConfig parses a YAML defaults file with strict field checking.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks parameter ranges.
func (c *Config) Validate() error {
	if c.Serve.DefaultQuantum != nil && *c.Serve.DefaultQuantum < 0 {
		return fmt.Errorf("serve.default_quantum must be non-negative, got %d", *c.Serve.DefaultQuantum)
	}
	if c.Serve.MaxTicks != nil && *c.Serve.MaxTicks < 0 {
		return fmt.Errorf("serve.max_ticks must be non-negative, got %d", *c.Serve.MaxTicks)
	}
	return nil
}

// overrideString sets *dst from the config value unless the flag was given explicitly.
func overrideString(cmd *cobra.Command, flag string, dst *string, v *string) {
	if v != nil && !cmd.Flags().Changed(flag) {
		*dst = *v
	}
}

func overrideBool(cmd *cobra.Command, flag string, dst *bool, v *bool) {
	if v != nil && !cmd.Flags().Changed(flag) {
		*dst = *v
	}
}

func overrideInt64(cmd *cobra.Command, flag string, dst *int64, v *int64) {
	if v != nil && !cmd.Flags().Changed(flag) {
		*dst = *v
	}
}
