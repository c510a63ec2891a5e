package duration

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// Plausibility bounds on how much older a parent may be than a child.
const (
	maxMotherGapYears = 60
	maxFatherGapYears = 80
)

func init() {
	check.Register(ParentChildAgeGap)
}

// ParentChildAgeGap checks that a mother is less than 60 years and a father
// less than 80 years older than each child, by calendar year difference.
// Families missing either parent's birth date are skipped.
var ParentChildAgeGap = check.RuleDef{
	ID:          "AN04",
	Name:        "duration.parent-child-age-gap",
	Group:       "duration",
	Category:    check.CategoryAnomaly,
	Description: "Mother should be less than 60 and father less than 80 years older than their children.",
	Check:       checkParentChildAgeGap,
}

func checkParentChildAgeGap(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Husband.Birth == nil {
			continue
		}
		if fam.Wife == nil || fam.Wife.Birth == nil {
			continue
		}
		for _, child := range fam.Children {
			if child.Birth == nil {
				continue
			}
			motherGap := child.Birth.YearsSince(*fam.Wife.Birth)
			fatherGap := child.Birth.YearsSince(*fam.Husband.Birth)
			facts := map[string]any{
				"family_xref":       fam.Xref,
				"child_xref":        child.Xref,
				"child_birth":       child.Birth.Fact(),
				"mother_xref":       fam.Wife.Xref,
				"mother_birth":      fam.Wife.Birth.Fact(),
				"mother_years_older": motherGap,
				"father_xref":       fam.Husband.Xref,
				"father_birth":      fam.Husband.Birth.Fact(),
				"father_years_older": fatherGap,
			}
			msg := fmt.Sprintf(
				"family %s has child %s born %s with mother %s %d years older and father %s %d years older",
				fam.Xref, child.Xref, child.Birth, fam.Wife.Xref, motherGap, fam.Husband.Xref, fatherGap)
			passed := motherGap < maxMotherGapYears && fatherGap < maxFatherGapYears
			f.Add(passed, check.Evidence{Facts: facts, Message: msg})
		}
	}
	return f
}
