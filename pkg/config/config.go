package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// Load reads and validates a configuration file.
// An empty path returns the validated defaults (with environment overrides).
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the pattern.
func Validate(cfg *Config) error {
	if err := validatePattern(cfg); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}

	if len(cfg.Units) == 0 {
		cfg.Units = extractor.DefaultUnits()
	}
	if err := extractor.Units(cfg.Units).Validate(); err != nil {
		return fmt.Errorf("units: %w", err)
	}

	if err := validateOutput(cfg); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

func validatePattern(cfg *Config) error {
	if cfg.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 2 {
		return fmt.Errorf("pattern has %d capture groups, need at least 2 (id, amount)", re.NumSubexp())
	}

	cfg.compiledPattern = re
	return nil
}

func validateOutput(cfg *Config) error {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	switch cfg.Output {
	case OutputText, OutputJSON, OutputCSV:
		return nil
	default:
		return fmt.Errorf("invalid format %q (must be text, json, or csv)", cfg.Output)
	}
}

// Extractor builds an extractor from a validated configuration.
func (c *Config) Extractor(logger *zap.Logger) (*extractor.Extractor, error) {
	if c.compiledPattern == nil {
		if err := Validate(c); err != nil {
			return nil, err
		}
	}

	return extractor.New(
		extractor.WithPattern(c.compiledPattern),
		extractor.WithUnits(extractor.Units(c.Units)),
		extractor.WithWidthFolding(c.FoldWidth),
		extractor.WithLogger(logger),
	)
}
