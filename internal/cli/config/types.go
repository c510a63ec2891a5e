// Package config provides configuration management for the gedlint CLI.
//
// Configuration is merged from four layers, lowest to highest precedence:
// built-in defaults, a gedlint.yaml config file, GEDLINT_* environment
// variables, and command-line flags.
package config

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// Default configuration values.
const (
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWorkers = 1
)

// Config holds all CLI configuration options.
type Config struct {
	// Output selects the rendering mode: auto, text, markdown, or json.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Workers bounds rule-level parallelism. 1 runs rules sequentially.
	Workers int `koanf:"workers"`

	// AsOf pins the evaluation date as YYYY-MM-DD. Empty means today.
	AsOf string `koanf:"as_of"`

	// DisabledRules lists rule IDs skipped on every run.
	DisabledRules []string `koanf:"disabled_rules"`

	// Categories remaps rule IDs to a reporting category, "error" or
	// "anomaly".
	Categories map[string]string `koanf:"categories"`
}

// CheckConfig translates the CLI configuration into a rule-engine
// configuration.
func (c *Config) CheckConfig() (*check.Config, error) {
	cfg := check.NewConfig()
	for _, id := range c.DisabledRules {
		cfg.Disable(id)
	}
	for id, name := range c.Categories {
		cat, ok := check.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q for rule %s", name, id)
		}
		cfg.SetCategory(id, cat)
	}
	return cfg, nil
}
