package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lineagelabs/gedlint/internal/cli/output"
	"github.com/lineagelabs/gedlint/pkg/check"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules" // register consistency rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group    string // Filter by group
	Category string // Filter by category: error, anomaly
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available consistency rules",
		Long: `List all available consistency rules with their documentation.

Rules are organized by group (ordering, duration, relation, family,
uniqueness) and carry a default category: errors are required-data
violations, anomalies are suspicious but possible patterns.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  gedlint rules

  # Show details for a specific rule
  gedlint rules ER03

  # List rules in the ordering group
  gedlint rules --group ordering

  # List anomaly rules only
  gedlint rules --category anomaly

  # Output as JSON
  gedlint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category: error, anomaly")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := filterRulesByOptions(check.GetAll(), opts)

	// Sort by group, then ID
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].ID < rules[j].ID
	})

	mode := r.EffectiveMode()
	switch mode {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules)
	default:
		return listRulesText(r, rules)
	}
}

func filterRulesByOptions(rules []check.RuleDef, opts *RulesOptions) []check.RuleDef {
	if opts.Group == "" && opts.Category == "" {
		return rules
	}

	var filtered []check.RuleDef
	for _, r := range rules {
		if opts.Group != "" && r.Group != opts.Group {
			continue
		}
		if opts.Category != "" && r.Category.String() != strings.ToLower(opts.Category) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := check.GetByID(strings.ToUpper(strings.TrimSpace(ruleID)))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	mode := r.EffectiveMode()
	switch mode {
	case output.ModeJSON:
		return r.JSON(rule.Info())
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []check.RuleDef) error {
	styles := r.Styles()

	errorCount, anomalyCount := 0, 0
	for _, rule := range rules {
		if rule.Category == check.CategoryError {
			errorCount++
		} else {
			anomalyCount++
		}
	}

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Consistency Rules (%d errors, %d anomalies)", errorCount, anomalyCount)))
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Header2.Render(capitalizeFirst(currentGroup)))
		}

		catStyle := categoryStyle(styles, rule.Category)
		r.Printf("  %s  %s - %s\n",
			styles.Muted.Render(rule.ID),
			rule.Name,
			catStyle.Render(rule.Category.String()),
		)
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'gedlint rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []check.RuleDef) error {
	r.Println("# Consistency Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}
		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.Category.String())
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for the rules listing.
type RulesJSONOutput struct {
	Rules []check.RuleInfo `json:"rules"`
	Count struct {
		Errors    int `json:"errors"`
		Anomalies int `json:"anomalies"`
		Total     int `json:"total"`
	} `json:"count"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []check.RuleDef) error {
	jsonOutput := RulesJSONOutput{}
	for _, rule := range rules {
		jsonOutput.Rules = append(jsonOutput.Rules, rule.Info())
		if rule.Category == check.CategoryError {
			jsonOutput.Count.Errors++
		} else {
			jsonOutput.Count.Anomalies++
		}
	}
	jsonOutput.Count.Total = len(rules)

	return r.JSON(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule check.RuleDef) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Category"), rule.Category.String())
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule check.RuleDef) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Category:** `%s`\n\n", rule.Group, rule.Category.String())
	r.Println(rule.Description)
	r.Println("")
	return nil
}

// Helper functions

func categoryStyle(styles *output.Styles, cat check.Category) lipgloss.Style {
	if cat == check.CategoryError {
		return styles.Error
	}
	return styles.Warning
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
