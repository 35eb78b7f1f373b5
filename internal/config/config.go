// Package config loads outflow configuration from .outflow/config.yaml.
// A missing file yields the defaults; environment variables override the
// file for settings that vary per shell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"outflow/internal/types"
)

// Config holds all outflow configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Synthesis defaults applied when a brief leaves them unset
	Defaults DefaultsConfig `yaml:"defaults"`

	// Workflow export
	Export ExportConfig `yaml:"export"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultsConfig holds fallback values for brief fields the parser could not
// infer.
type DefaultsConfig struct {
	Tone      types.Tone    `yaml:"tone"`
	Cadence   types.Cadence `yaml:"cadence"`
	StepCount int           `yaml:"step_count"`
}

// ExportConfig configures workflow export.
type ExportConfig struct {
	Format string `yaml:"format"` // yaml, json
	Dir    string `yaml:"dir"`    // relative to the workspace
}

// LoggingConfig configures the categorized debug logs.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging (production)
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false (production mode).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "outflow",
		Version: "0.3.0",

		Defaults: DefaultsConfig{
			Tone:      types.ToneProfessional,
			Cadence:   types.CadenceModerate,
			StepCount: 5,
		},

		Export: ExportConfig{
			Format: "yaml",
			Dir:    "workflows",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the path to .outflow/config.yaml under the
// current working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".outflow", "config.yaml")
	}
	return filepath.Join(cwd, ".outflow", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if tone := os.Getenv("OUTFLOW_TONE"); tone != "" {
		c.Defaults.Tone = types.Tone(tone)
	}
	if cadence := os.Getenv("OUTFLOW_CADENCE"); cadence != "" {
		c.Defaults.Cadence = types.Cadence(cadence)
	}
	if steps := os.Getenv("OUTFLOW_STEPS"); steps != "" {
		if n, err := strconv.Atoi(steps); err == nil {
			c.Defaults.StepCount = n
		}
	}
	if format := os.Getenv("OUTFLOW_EXPORT_FORMAT"); format != "" {
		c.Export.Format = format
	}
	if os.Getenv("OUTFLOW_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Defaults.Tone {
	case types.ToneProfessional, types.ToneCasual, types.ToneFriendly, types.ToneDirect:
	default:
		return fmt.Errorf("invalid default tone: %s", c.Defaults.Tone)
	}

	switch c.Defaults.Cadence {
	case types.CadenceAggressive, types.CadenceModerate, types.CadenceGentle:
	default:
		return fmt.Errorf("invalid default cadence: %s", c.Defaults.Cadence)
	}

	if c.Defaults.StepCount < 2 || c.Defaults.StepCount > 10 {
		return fmt.Errorf("default step count %d out of range [2, 10]", c.Defaults.StepCount)
	}

	switch c.Export.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid export format: %s (valid: yaml, json)", c.Export.Format)
	}

	return nil
}
