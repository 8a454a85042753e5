package config

import (
	"os"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// Default values for configuration.
const (
	DefaultPattern = extractor.DefaultPattern
	DefaultOutput  = OutputText
)

// Environment variable names.
const (
	EnvPattern = "TOPUP_PATTERN"
	EnvOutput  = "TOPUP_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Pattern: DefaultPattern,
		Units:   extractor.DefaultUnits(),
		Output:  DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if pattern := os.Getenv(EnvPattern); pattern != "" {
		c.Pattern = pattern
	}
	if output := os.Getenv(EnvOutput); output != "" {
		c.Output = OutputFormat(output)
	}
}
