// Package config provides configuration loading and validation for topup.
package config

import (
	"regexp"
)

// OutputFormat names a report formatter.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputCSV  OutputFormat = "csv"
)

// Config is the root configuration structure loaded from YAML.
// Every field is optional; DefaultConfig supplies the missing ones.
type Config struct {
	// Pattern is the line regex. Group 1 captures the id, group 2 the amount
	// and the optional group 3 the unit suffix.
	Pattern string `yaml:"pattern"`

	// Units maps single-character suffixes to multipliers. Entries are merged
	// over the defaults (w and k), so a file only lists what it adds or changes.
	Units map[string]int64 `yaml:"units"`

	// FoldWidth folds full-width digits and letters to ASCII before matching.
	FoldWidth bool `yaml:"fold_width"`

	// Output is the default report format (text, json, csv).
	Output OutputFormat `yaml:"output"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled regex pattern.
func (c *Config) CompiledPattern() *regexp.Regexp {
	return c.compiledPattern
}
