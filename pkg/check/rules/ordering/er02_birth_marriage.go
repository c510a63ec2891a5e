package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(BirthBeforeMarriage)
}

// BirthBeforeMarriage checks that an individual is born before each of
// their own marriages.
var BirthBeforeMarriage = check.RuleDef{
	ID:          "ER02",
	Name:        "ordering.birth-before-marriage",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Birth must occur before the individual's marriage.",
	Check:       checkBirthBeforeMarriage,
}

func checkBirthBeforeMarriage(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, indi := range ctx.File.Individuals {
		if indi.Birth == nil {
			continue
		}
		for _, fam := range indi.SpouseIn {
			if fam.Marriage == nil {
				continue
			}
			facts := map[string]any{
				"individual_xref": indi.Xref,
				"family_xref":     fam.Xref,
				"birth_date":      indi.Birth.Fact(),
				"marriage_date":   fam.Marriage.Fact(),
			}
			if indi.Birth.Before(*fam.Marriage) {
				f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
					"individual %s born %s before marriage %s on %s",
					indi.Xref, indi.Birth, fam.Xref, fam.Marriage)})
			} else {
				f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
					"individual %s born %s after marriage %s on %s",
					indi.Xref, indi.Birth, fam.Xref, fam.Marriage)})
			}
		}
	}
	return f
}
