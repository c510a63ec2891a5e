package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

var (
	// ErrNoFile is returned when Run is called without a record graph.
	ErrNoFile = errors.New("no record graph provided")

	// ErrUnknownRule is returned when a selected rule ID is not registered.
	ErrUnknownRule = errors.New("unknown rule")
)

// Runner executes registered rules against a record graph.
type Runner struct {
	config  *Config
	logger  *slog.Logger
	workers int
}

// NewRunner creates a runner with the given configuration.
// A nil config enables all rules with their default categories.
func NewRunner(config *Config) *Runner {
	if config == nil {
		config = NewConfig()
	}
	return &Runner{
		config:  config,
		logger:  slog.Default(),
		workers: 1,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *slog.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// SetWorkers sets the number of rules evaluated concurrently.
// Values below 2 keep execution sequential.
func (r *Runner) SetWorkers(n int) *Runner {
	r.workers = n
	return r
}

// Run evaluates the selected rules against file. An empty ids slice selects
// every registered rule. Results come back in ascending rule-ID order for an
// empty selection, or in selection order otherwise, regardless of worker
// count. asOf is the "current date" rules compare against.
//
// With sequential execution a cancelled ctx stops before the next rule and
// the results gathered so far are returned alongside ctx.Err().
func (r *Runner) Run(ctx context.Context, file *gedcom.File, asOf time.Time, ids []string) ([]Result, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	defs, err := r.resolve(ids)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := r.logger.With("run", runID)
	log.Debug("starting check run",
		"rules", len(defs),
		"as_of", asOf.Format("2006-01-02"),
		"individuals", len(file.Individuals),
		"families", len(file.Families))

	checkCtx := &Context{File: file, AsOf: gedcom.DateOf(asOf)}
	results := make([]Result, len(defs))

	if r.workers <= 1 {
		for i, def := range defs {
			if err := ctx.Err(); err != nil {
				log.Debug("check run cancelled", "completed", i)
				return results[:i], err
			}
			results[i] = r.invoke(def, checkCtx, log)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.invoke(def, checkCtx, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolve maps the selection to rule definitions, dropping disabled rules.
func (r *Runner) resolve(ids []string) ([]RuleDef, error) {
	var selected []RuleDef
	if len(ids) == 0 {
		selected = GetAll()
	} else {
		for _, id := range ids {
			def, ok := GetByID(id)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
			}
			selected = append(selected, def)
		}
	}

	defs := selected[:0]
	for _, def := range selected {
		if r.config.IsDisabled(def.ID) {
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (r *Runner) invoke(def RuleDef, checkCtx *Context, log *slog.Logger) Result {
	findings := def.Check(checkCtx)
	log.Debug("rule evaluated",
		"rule", def.ID,
		"passed", len(findings.Passed),
		"failed", len(findings.Failed))
	return Result{
		RuleID:   def.ID,
		Name:     def.Name,
		Category: r.config.GetCategory(def.ID, def.Category),
		Passed:   findings.Passed,
		Failed:   findings.Failed,
	}
}
