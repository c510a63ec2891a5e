// Package check provides the consistency-rule framework for GEDCOM record
// graphs. Rules are registered by ID in a global registry, selected and run
// by a Runner, and produce immutable Results whose passed/failed Evidence
// entries carry structured facts alongside a rendered message.
//
// The package defines the shared types; rule implementations live in
// subpackages of pkg/check/rules and register themselves via init().
package check

import (
	"strings"

	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

// Category classifies a rule. Errors represent required-data violations;
// anomalies represent suspicious but possible patterns.
type Category int

// Rule categories.
const (
	CategoryError Category = iota
	CategoryAnomaly
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryAnomaly:
		return "anomaly"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return CategoryError, true
	case "anomaly":
		return CategoryAnomaly, true
	default:
		return 0, false
	}
}

// Evidence is one structured pass/fail record for one examined entity or
// relationship. Facts always include the involved xrefs; date facts use the
// denormalized gedcom.DateFact form, never a raw time handle. Evidence is
// never mutated after a rule returns it.
type Evidence struct {
	Facts   map[string]any `json:"facts"`
	Message string         `json:"message"`
}

// Findings accumulates a rule's Evidence. The zero value is ready to use.
type Findings struct {
	Passed []Evidence
	Failed []Evidence
}

// Pass records a passing Evidence entry.
func (f *Findings) Pass(ev Evidence) { f.Passed = append(f.Passed, ev) }

// Fail records a failing Evidence entry.
func (f *Findings) Fail(ev Evidence) { f.Failed = append(f.Failed, ev) }

// Add records ev as passed or failed.
func (f *Findings) Add(passed bool, ev Evidence) {
	if passed {
		f.Pass(ev)
	} else {
		f.Fail(ev)
	}
}

// Context carries one run's inputs into a rule. The file is read-only for
// the duration of the run; AsOf is the explicit "current date" used by
// duration and ordering rules (no rule consults the wall clock).
type Context struct {
	File *gedcom.File
	AsOf gedcom.Date
}

// Result is the full output of one rule invocation. It is constructed once
// by the Runner and never mutated afterwards.
type Result struct {
	RuleID   string     `json:"id"`
	Name     string     `json:"name"`
	Category Category   `json:"-"`
	Passed   []Evidence `json:"passed"`
	Failed   []Evidence `json:"failed"`
}
