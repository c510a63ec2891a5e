package config

import (
	"fmt"
	"time"
)

var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output mode %q (want auto, text, markdown, or json)", c.Output)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.AsOf); err != nil {
			return fmt.Errorf("invalid as_of date %q: want YYYY-MM-DD", c.AsOf)
		}
	}
	return nil
}

// AsOfTime resolves the pinned evaluation date, defaulting to now.
func (c *Config) AsOfTime() (time.Time, error) {
	if c.AsOf == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", c.AsOf)
}
