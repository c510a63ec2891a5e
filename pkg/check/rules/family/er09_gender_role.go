package family

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(GenderMatchesRole)
}

// GenderMatchesRole checks that the husband slot holds a male individual
// and the wife slot a female one. Occupants with unrecorded sex are
// skipped.
var GenderMatchesRole = check.RuleDef{
	ID:          "ER09",
	Name:        "family.gender-matches-role",
	Group:       "family",
	Category:    check.CategoryError,
	Description: "Husband in a family should be male and wife should be female.",
	Check:       checkGenderMatchesRole,
}

func checkGenderMatchesRole(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		roleEvidence(&f, fam, "husband", fam.Husband, gedcom.SexMale)
		roleEvidence(&f, fam, "wife", fam.Wife, gedcom.SexFemale)
	}
	return f
}

func roleEvidence(f *check.Findings, fam *gedcom.Family, role string, indi *gedcom.Individual, want gedcom.Sex) {
	if indi == nil || indi.Sex == gedcom.SexUnknown {
		return
	}
	facts := map[string]any{
		"family_xref":     fam.Xref,
		"role":            role,
		"individual_xref": indi.Xref,
		"sex":             indi.Sex.String(),
	}
	if indi.Sex == want {
		f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
			"family %s has %s %s %s recorded as %s", fam.Xref, role, indi.Xref, indi.Name, indi.Sex)})
	} else {
		f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
			"family %s has %s %s %s recorded as %s", fam.Xref, role, indi.Xref, indi.Name, indi.Sex)})
	}
}
