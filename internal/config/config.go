// Package config provides configuration management for calc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFile is the file written by "calc config init".
const DefaultFile = ".calc.yaml"

// ErrUnknownFormat is returned by Validate for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Config represents the configuration for calc.
type Config struct {
	Verbose bool         `yaml:"verbose"`
	Output  OutputConfig `yaml:"output"`
}

// OutputConfig contains output-related configuration.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{DefaultFile, ".calc.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate reports whether the configuration can be used as is.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write YAML config file: %w", err)
	}

	return nil
}
