package duration

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// posthumousMonths is the longest plausible gap between a father's death
// and a child's birth, counted in 30-day months.
const posthumousMonths = 9

func init() {
	check.Register(BirthBeforeParentDeath)
}

// BirthBeforeParentDeath checks that a child is born before the mother's
// death and no later than nine months after the father's death. The father
// window uses a fixed 30-day month, not calendar months. Children of a
// family where neither parent has a recorded death date are skipped.
var BirthBeforeParentDeath = check.RuleDef{
	ID:          "ER08",
	Name:        "duration.birth-before-parent-death",
	Group:       "duration",
	Category:    check.CategoryError,
	Description: "Children must be born before the mother's death and within 9 months of the father's death.",
	Check:       checkBirthBeforeParentDeath,
}

func checkBirthBeforeParentDeath(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		motherDied := fam.Wife != nil && fam.Wife.Death != nil
		fatherDied := fam.Husband != nil && fam.Husband.Death != nil
		if !motherDied && !fatherDied {
			continue
		}
		for _, child := range fam.Children {
			if child.Birth == nil {
				continue
			}
			facts := map[string]any{
				"family_xref":      fam.Xref,
				"child_xref":       child.Xref,
				"child_birth_date": child.Birth.Fact(),
			}
			passed := true
			msg := fmt.Sprintf("family %s has child %s born %s", fam.Xref, child.Xref, child.Birth)
			if motherDied {
				facts["mother_xref"] = fam.Wife.Xref
				facts["mother_death_date"] = fam.Wife.Death.Fact()
				passed = passed && child.Birth.Before(*fam.Wife.Death)
				msg += fmt.Sprintf(", mother %s died %s", fam.Wife.Xref, fam.Wife.Death)
			}
			if fatherDied {
				monthsAfter := child.Birth.DaysSince(*fam.Husband.Death) / 30
				facts["father_xref"] = fam.Husband.Xref
				facts["father_death_date"] = fam.Husband.Death.Fact()
				facts["months_after_father_death"] = monthsAfter
				passed = passed && monthsAfter <= posthumousMonths
				msg += fmt.Sprintf(", father %s died %s", fam.Husband.Xref, fam.Husband.Death)
			}
			f.Add(passed, check.Evidence{Facts: facts, Message: msg})
		}
	}
	return f
}
