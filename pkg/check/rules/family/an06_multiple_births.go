package family

import (
	"fmt"
	"sort"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// maxSimultaneousBirths is the largest plausible multiple birth.
const maxSimultaneousBirths = 5

func init() {
	check.Register(MultipleBirthsBounded)
}

// MultipleBirthsBounded checks that no more than five siblings of a family
// share the same birth date. One Evidence entry is produced per multiple
// birth (a birth date shared by two or more siblings).
var MultipleBirthsBounded = check.RuleDef{
	ID:          "AN06",
	Name:        "family.multiple-births-bounded",
	Group:       "family",
	Category:    check.CategoryAnomaly,
	Description: "No more than five siblings should be born at the same time.",
	Check:       checkMultipleBirthsBounded,
}

func checkMultipleBirthsBounded(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		byDate := make(map[string][]string)
		for _, child := range fam.Children {
			if child.Birth == nil {
				continue
			}
			key := child.Birth.String()
			byDate[key] = append(byDate[key], child.Xref)
		}
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			xrefs := byDate[date]
			if len(xrefs) < 2 {
				continue
			}
			facts := map[string]any{
				"family_xref":   fam.Xref,
				"birth_date":    date,
				"sibling_xrefs": xrefs,
				"count":         len(xrefs),
			}
			msg := fmt.Sprintf("family %s has %d siblings born on %s", fam.Xref, len(xrefs), date)
			f.Add(len(xrefs) <= maxSimultaneousBirths, check.Evidence{Facts: facts, Message: msg})
		}
	}
	return f
}
