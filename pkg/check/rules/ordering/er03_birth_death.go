package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(BirthBeforeDeath)
}

// BirthBeforeDeath checks that an individual is born before they die.
var BirthBeforeDeath = check.RuleDef{
	ID:          "ER03",
	Name:        "ordering.birth-before-death",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Birth must occur before the individual's death.",
	Check:       checkBirthBeforeDeath,
}

func checkBirthBeforeDeath(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, indi := range ctx.File.Individuals {
		if indi.Birth == nil || indi.Death == nil {
			continue
		}
		facts := map[string]any{
			"individual_xref": indi.Xref,
			"birth_date":      indi.Birth.Fact(),
			"death_date":      indi.Death.Fact(),
		}
		if indi.Birth.Before(*indi.Death) {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual %s born %s before death on %s",
				indi.Xref, indi.Birth, indi.Death)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual %s born %s after death on %s",
				indi.Xref, indi.Birth, indi.Death)})
		}
	}
	return f
}
