package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lineagelabs/gedlint/internal/cli/config"
	"github.com/lineagelabs/gedlint/internal/cli/output"
	"github.com/lineagelabs/gedlint/pkg/check"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules" // register consistency rules
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format  string   // Output format: text, markdown, json
	Rules   []string // Run only specific rules
	Disable []string // Rule IDs to disable
	AsOf    string   // Evaluation date, YYYY-MM-DD
	Workers int      // Rule-level parallelism
	Watch   bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file.ged>",
		Short: "Run consistency rules against a GEDCOM file",
		Long: `Parse a GEDCOM file and run every registered consistency rule
against the individuals and families it contains.

Each rule produces pass/fail evidence with the xrefs and dates that
were examined. Rules in the error category make the command exit
non-zero when they fail; anomalies are reported but do not affect
the exit status.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check a file with all rules
  gedlint check family.ged

  # Run only specific rules
  gedlint check family.ged --rule ER03,ER07

  # Disable specific rules
  gedlint check family.ged --disable AN07,AN08

  # Pin the evaluation date
  gedlint check family.ged --as-of 2020-01-01

  # Re-run whenever the file changes
  gedlint check family.ged --watch

  # Output as JSON
  gedlint check family.ged --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVarP(&opts.Rules, "rule", "r", nil, "Run only specific rules")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.AsOf, "as-of", "", "Evaluation date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Number of rules to evaluate concurrently")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when the file changes")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	asOf, err := resolveAsOf(cmdCtx.Cfg, opts.AsOf)
	if err != nil {
		return err
	}

	runner, err := buildRunner(cmdCtx, opts)
	if err != nil {
		return err
	}

	if opts.Watch {
		return watchAndCheck(cmd, r, cmdCtx, runner, path, asOf, opts)
	}
	return checkOnce(cmd, r, cmdCtx, runner, path, asOf, opts)
}

// resolveAsOf picks the evaluation date: flag > config > now.
func resolveAsOf(cfg *config.Config, flag string) (time.Time, error) {
	if flag != "" {
		t, err := time.Parse("2006-01-02", flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --as-of date %q: want YYYY-MM-DD", flag)
		}
		return t, nil
	}
	return cfg.AsOfTime()
}

func buildRunner(cmdCtx *CommandContext, opts *CheckOptions) (*check.Runner, error) {
	checkCfg, err := cmdCtx.Cfg.CheckConfig()
	if err != nil {
		return nil, err
	}
	for _, id := range opts.Disable {
		checkCfg.Disable(strings.TrimSpace(id))
	}

	workers := cmdCtx.Cfg.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	runner := check.NewRunner(checkCfg)
	runner.SetLogger(cmdCtx.Logger).SetWorkers(workers)
	return runner, nil
}

func checkOnce(cmd *cobra.Command, r *output.Renderer, cmdCtx *CommandContext, runner *check.Runner, path string, asOf time.Time, opts *CheckOptions) error {
	file, err := gedcom.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	results, err := runner.Run(cmd.Context(), file, asOf, ruleIDs(opts.Rules))
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.Verbose {
		check.NewReporter(cmdCtx.Logger).ReportAll(results)
	}

	summary := check.Summarize(results)
	if err := renderCheckResults(r, path, asOf, results, summary); err != nil {
		return err
	}

	if summary.FailedErrors > 0 {
		return fmt.Errorf("%d error finding(s) in %s", summary.FailedErrors, path)
	}
	return nil
}

// ruleIDs normalizes the --rule values, tolerating comma-separated lists
// with stray whitespace.
func ruleIDs(rules []string) []string {
	var ids []string
	for _, r := range rules {
		for _, id := range strings.Split(r, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func watchAndCheck(cmd *cobra.Command, r *output.Renderer, cmdCtx *CommandContext, runner *check.Runner, path string, asOf time.Time, opts *CheckOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors often replace the
	// file on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	runAndReport := func() {
		if err := checkOnce(cmd, r, cmdCtx, runner, path, asOf, opts); err != nil {
			r.Println(r.Styles().Error.Render(err.Error()))
		}
	}

	runAndReport()
	r.Printf("Watching %s for changes...\n", path)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if evAbs != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			runAndReport()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return werr
		}
	}
}

// CheckJSONOutput is the JSON output structure for a check run.
type CheckJSONOutput struct {
	File    string         `json:"file"`
	AsOf    string         `json:"as_of"`
	Summary check.Summary  `json:"summary"`
	Results []check.Result `json:"results"`
}

func renderCheckResults(r *output.Renderer, path string, asOf time.Time, results []check.Result, summary check.Summary) error {
	mode := r.EffectiveMode()

	if mode == output.ModeJSON {
		return r.JSON(CheckJSONOutput{
			File:    path,
			AsOf:    asOf.Format("2006-01-02"),
			Summary: summary,
			Results: results,
		})
	}

	renderSummaryTable(r, mode, results)
	renderFailures(r, mode, results)

	if summary.Failed == 0 {
		r.Success("No inconsistencies found")
		return nil
	}

	line := fmt.Sprintf("Summary: %d findings failed (%d errors, %d anomalies) out of %d rules",
		summary.Failed, summary.FailedErrors, summary.FailedAnomalies, summary.Rules)
	if mode == output.ModeText {
		line = r.Styles().Bold.Render(line)
	}
	r.Println(line)
	return nil
}

// renderSummaryTable prints one row per rule with pass/fail counts.
func renderSummaryTable(r *output.Renderer, mode output.Mode, results []check.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"ID", "Rule", "Category", "Passed", "Failed"})
	for _, res := range results {
		t.AppendRow(table.Row{res.RuleID, res.Name, res.Category.String(), len(res.Passed), len(res.Failed)})
	}

	if mode == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	r.Println("")
}

// renderFailures prints every failing evidence message grouped by rule.
func renderFailures(r *output.Renderer, mode output.Mode, results []check.Result) {
	styles := r.Styles()
	for _, res := range results {
		if len(res.Failed) == 0 {
			continue
		}

		header := fmt.Sprintf("%s %s", res.RuleID, res.Name)
		if mode == output.ModeText {
			r.Println(styles.Header2.Render(header))
		} else {
			r.Println("## " + header)
		}

		catLabel := res.Category.String()
		if mode == output.ModeText {
			if res.Category == check.CategoryError {
				catLabel = styles.Error.Render(catLabel)
			} else {
				catLabel = styles.Warning.Render(catLabel)
			}
		}
		for _, ev := range res.Failed {
			r.Printf("  %s  %s\n", catLabel, ev.Message)
		}
		r.Println("")
	}
}
