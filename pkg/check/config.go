package check

// Config controls which rules run and how their results are classified.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// CategoryOverrides reclassifies rules, e.g. promoting an anomaly
	// to an error for a strict dataset
	CategoryOverrides map[string]Category
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		CategoryOverrides: make(map[string]Category),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetCategory returns the category for a rule, applying any override.
func (c *Config) GetCategory(ruleID string, defaultCategory Category) Category {
	if c != nil {
		if cat, ok := c.CategoryOverrides[ruleID]; ok {
			return cat
		}
	}
	return defaultCategory
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetCategory overrides the category for a rule.
func (c *Config) SetCategory(ruleID string, cat Category) *Config {
	c.CategoryOverrides[ruleID] = cat
	return c
}
