package ordering

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(MarriageBeforeSpouseDeath)
}

// MarriageBeforeSpouseDeath checks that a marriage precedes the death of
// either spouse. One Evidence entry is produced per spouse with a recorded
// death date.
var MarriageBeforeSpouseDeath = check.RuleDef{
	ID:          "ER05",
	Name:        "ordering.marriage-before-spouse-death",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Marriage must occur before the death of either spouse.",
	Check:       checkMarriageBeforeSpouseDeath,
}

func checkMarriageBeforeSpouseDeath(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Marriage == nil {
			continue
		}
		spouseEvidence(&f, fam, "husband", fam.Husband, *fam.Marriage, "marriage")
		spouseEvidence(&f, fam, "wife", fam.Wife, *fam.Marriage, "marriage")
	}
	return f
}

// spouseEvidence records one entry comparing event against the spouse's
// death date; for "marriage" the event must precede death, for "divorce"
// it must also precede death. Spouses without a death date are skipped.
func spouseEvidence(f *check.Findings, fam *gedcom.Family, role string, spouse *gedcom.Individual, event gedcom.Date, eventName string) {
	if spouse == nil || spouse.Death == nil {
		return
	}
	facts := map[string]any{
		"family_xref":         fam.Xref,
		"role":                role,
		"spouse_xref":         spouse.Xref,
		eventName + "_date":   event.Fact(),
		"death_date":          spouse.Death.Fact(),
	}
	if event.Before(*spouse.Death) {
		f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
			"family %s has %s on %s before death of %s %s on %s",
			fam.Xref, eventName, event, role, spouse.Xref, spouse.Death)})
	} else {
		f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
			"family %s has %s on %s after death of %s %s on %s",
			fam.Xref, eventName, event, role, spouse.Xref, spouse.Death)})
	}
}
