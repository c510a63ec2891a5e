package duration

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// minMarriageAgeYears is the youngest plausible age at marriage.
const minMarriageAgeYears = 14

func init() {
	check.Register(MinimumMarriageAge)
}

// MinimumMarriageAge checks that both spouses are at least 14 years old at
// the marriage date. Families missing the marriage date or either spouse's
// birth date are skipped.
var MinimumMarriageAge = check.RuleDef{
	ID:          "AN02",
	Name:        "duration.minimum-marriage-age",
	Group:       "duration",
	Category:    check.CategoryAnomaly,
	Description: "Marriage should be at least 14 years after the birth of both spouses.",
	Check:       checkMinimumMarriageAge,
}

func checkMinimumMarriageAge(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Marriage == nil {
			continue
		}
		if fam.Husband == nil || fam.Husband.Birth == nil {
			continue
		}
		if fam.Wife == nil || fam.Wife.Birth == nil {
			continue
		}
		husbandAge := fam.Marriage.YearsSince(*fam.Husband.Birth)
		wifeAge := fam.Marriage.YearsSince(*fam.Wife.Birth)
		facts := map[string]any{
			"family_xref":       fam.Xref,
			"marriage_date":     fam.Marriage.Fact(),
			"husband_xref":      fam.Husband.Xref,
			"husband_birth":     fam.Husband.Birth.Fact(),
			"husband_marriage_age": husbandAge,
			"wife_xref":         fam.Wife.Xref,
			"wife_birth":        fam.Wife.Birth.Fact(),
			"wife_marriage_age": wifeAge,
		}
		msg := fmt.Sprintf(
			"family %s has marriage on %s with wife %s married at %d and husband %s married at %d",
			fam.Xref, fam.Marriage, fam.Wife.Xref, wifeAge, fam.Husband.Xref, husbandAge)
		passed := husbandAge >= minMarriageAgeYears && wifeAge >= minMarriageAgeYears
		f.Add(passed, check.Evidence{Facts: facts, Message: msg})
	}
	return f
}
