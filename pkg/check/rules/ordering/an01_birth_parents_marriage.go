package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(BirthInsideParentsMarriage)
}

// BirthInsideParentsMarriage checks that each child is born after the
// parents' marriage and, when a divorce is recorded, before it.
var BirthInsideParentsMarriage = check.RuleDef{
	ID:          "AN01",
	Name:        "ordering.birth-inside-parents-marriage",
	Group:       "ordering",
	Category:    check.CategoryAnomaly,
	Description: "Children should be born after the parents' marriage and before their divorce.",
	Check:       checkBirthInsideParentsMarriage,
}

func checkBirthInsideParentsMarriage(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Marriage == nil {
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
				"marriage_date":    fam.Marriage.Fact(),
			}
			passed := fam.Marriage.Before(*child.Birth)
			var msg string
			if fam.Divorce != nil {
				facts["divorce_date"] = fam.Divorce.Fact()
				passed = passed && fam.Divorce.After(*child.Birth)
				msg = fmt.Sprintf(
					"family %s with marriage on %s and divorce on %s has child %s born %s",
					fam.Xref, fam.Marriage, fam.Divorce, child.Xref, child.Birth)
			} else {
				msg = fmt.Sprintf(
					"family %s with marriage on %s has child %s born %s",
					fam.Xref, fam.Marriage, child.Xref, child.Birth)
			}
			f.Add(passed, check.Evidence{Facts: facts, Message: msg})
		}
	}
	return f
}
