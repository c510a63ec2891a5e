package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(DatesBeforeCurrent)
}

// DatesBeforeCurrent flags any recorded event date lying after the as-of date.
var DatesBeforeCurrent = check.RuleDef{
	ID:          "ER01",
	Name:        "ordering.current-date",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Birth, marriage, divorce and death dates must not be in the future.",
	Check:       checkDatesBeforeCurrent,
}

func checkDatesBeforeCurrent(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, ev := range ctx.File.EventDates() {
		facts := map[string]any{
			"owner_kind":   ev.OwnerKind,
			"owner_xref":   ev.OwnerXref,
			"event":        ev.Tag,
			"date":         ev.Date.Fact(),
			"current_date": ctx.AsOf.String(),
		}
		if !ev.Date.After(ctx.AsOf) {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"%s date %s of %s is not after %s (current date)",
				ev.Tag, ev.Date, ev.OwnerXref, ctx.AsOf)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"%s date %s of %s is after %s (current date)",
				ev.Tag, ev.Date, ev.OwnerXref, ctx.AsOf)})
		}
	}
	return f
}
