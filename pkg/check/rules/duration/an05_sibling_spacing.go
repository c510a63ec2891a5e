package duration

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// Sibling births are plausible when essentially simultaneous (twins) or at
// least 8 months apart, approximated as 8 x 30 days.
const (
	twinWindowDays      = 2
	minSiblingGapDays   = 240
)

func init() {
	check.Register(SiblingSpacing)
}

// SiblingSpacing checks that sibling birth dates within a family are either
// at most 2 days apart or more than 240 days apart. Each dated sibling pair
// produces one Evidence entry.
var SiblingSpacing = check.RuleDef{
	ID:          "AN05",
	Name:        "duration.sibling-spacing",
	Group:       "duration",
	Category:    check.CategoryAnomaly,
	Description: "Sibling births should be more than 8 months apart or less than 2 days apart.",
	Check:       checkSiblingSpacing,
}

func checkSiblingSpacing(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		var dated []int
		for i, child := range fam.Children {
			if child.Birth != nil {
				dated = append(dated, i)
			}
		}
		for a := 0; a < len(dated); a++ {
			for b := a + 1; b < len(dated); b++ {
				sibA := fam.Children[dated[a]]
				sibB := fam.Children[dated[b]]
				days := sibB.Birth.DaysSince(*sibA.Birth)
				if days < 0 {
					days = -days
				}
				facts := map[string]any{
					"family_xref":       fam.Xref,
					"days_apart":        days,
					"sibling_one_xref":  sibA.Xref,
					"sibling_one_birth": sibA.Birth.Fact(),
					"sibling_two_xref":  sibB.Xref,
					"sibling_two_birth": sibB.Birth.Fact(),
				}
				msg := fmt.Sprintf(
					"family %s has siblings born %d days apart with %s born %s and %s born %s",
					fam.Xref, days, sibA.Xref, sibA.Birth, sibB.Xref, sibB.Birth)
				passed := days <= twinWindowDays || days > minSiblingGapDays
				f.Add(passed, check.Evidence{Facts: facts, Message: msg})
			}
		}
	}
	return f
}
