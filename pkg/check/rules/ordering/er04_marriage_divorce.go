package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(MarriageBeforeDivorce)
}

// MarriageBeforeDivorce checks that a family's marriage precedes its divorce.
var MarriageBeforeDivorce = check.RuleDef{
	ID:          "ER04",
	Name:        "ordering.marriage-before-divorce",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Marriage must occur before the spouses' divorce.",
	Check:       checkMarriageBeforeDivorce,
}

func checkMarriageBeforeDivorce(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Marriage == nil || fam.Divorce == nil {
			continue
		}
		facts := map[string]any{
			"family_xref":   fam.Xref,
			"marriage_date": fam.Marriage.Fact(),
			"divorce_date":  fam.Divorce.Fact(),
		}
		if fam.Husband != nil {
			facts["husband_xref"] = fam.Husband.Xref
		}
		if fam.Wife != nil {
			facts["wife_xref"] = fam.Wife.Xref
		}
		if fam.Marriage.Before(*fam.Divorce) {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s has marriage on %s before divorce on %s",
				fam.Xref, fam.Marriage, fam.Divorce)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s has marriage on %s after divorce on %s",
				fam.Xref, fam.Marriage, fam.Divorce)})
		}
	}
	return f
}
