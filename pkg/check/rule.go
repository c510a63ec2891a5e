package check

// CheckFunc evaluates one rule against the record graph in ctx and returns
// the evidence it gathered. Implementations must not mutate ctx.File and
// must not consult the wall clock; the current date is ctx.AsOf.
type CheckFunc func(ctx *Context) Findings

// RuleDef defines a consistency rule. Rule IDs follow the two-letter
// two-digit convention (ER01, AN07) where the letters encode the category.
type RuleDef struct {
	// ID is the unique rule identifier, e.g. "ER03".
	ID string

	// Name is a short kebab-case handle, e.g. "birth-before-death".
	Name string

	// Group names the rule family for discovery, e.g. "ordering".
	Group string

	// Category is the default classification; it can be overridden
	// per rule via Config.
	Category Category

	// Description explains what the rule checks.
	Description string

	// Check evaluates the rule.
	Check CheckFunc
}

// RuleInfo is the serializable description of a rule for listings.
type RuleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Info returns the listing form of the rule.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:          r.ID,
		Name:        r.Name,
		Group:       r.Group,
		Category:    r.Category.String(),
		Description: r.Description,
	}
}
