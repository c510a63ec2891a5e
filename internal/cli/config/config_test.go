package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.AsOf)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "gedlint.yaml")
	content := `
output: json
workers: 4
as_of: "2020-01-01"
disabled_rules:
  - AN07
categories:
  AN03: error
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "2020-01-01", cfg.AsOf)
	assert.Equal(t, []string{"AN07"}, cfg.DisabledRules)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	ResetConfig()
	t.Setenv("GEDLINT_OUTPUT", "markdown")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
}

func TestLoadConfigFlagsWinOverEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("GEDLINT_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--output", "text"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// Only changed flags override; workers keeps its default.
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad output", Config{Output: "yaml", Workers: 1}},
		{"zero workers", Config{Output: "auto", Workers: 0}},
		{"bad as_of", Config{Output: "auto", Workers: 1, AsOf: "01/02/2020"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestCheckConfig(t *testing.T) {
	cfg := &Config{
		DisabledRules: []string{"ER01", "AN05"},
		Categories:    map[string]string{"AN03": "error"},
	}

	checkCfg, err := cfg.CheckConfig()
	require.NoError(t, err)

	assert.True(t, checkCfg.IsDisabled("ER01"))
	assert.True(t, checkCfg.IsDisabled("AN05"))
	assert.False(t, checkCfg.IsDisabled("AN03"))
	assert.Equal(t, check.CategoryError, checkCfg.GetCategory("AN03", check.CategoryAnomaly))
}

func TestCheckConfigRejectsUnknownCategory(t *testing.T) {
	cfg := &Config{Categories: map[string]string{"AN03": "fatal"}}
	_, err := cfg.CheckConfig()
	assert.ErrorContains(t, err, "unknown category")
}
