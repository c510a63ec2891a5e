package uniqueness

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(UniqueFamiliesBySpouses)
}

// UniqueFamiliesBySpouses checks that no two families share both spouse
// names and a marriage date. Families missing either spouse or the
// marriage date are skipped.
var UniqueFamiliesBySpouses = check.RuleDef{
	ID:          "AN14",
	Name:        "uniqueness.unique-families-by-spouses",
	Group:       "uniqueness",
	Category:    check.CategoryAnomaly,
	Description: "No more than one family with the same spouse names and marriage date should appear.",
	Check:       checkUniqueFamiliesBySpouses,
}

func familyKey(husbandName, wifeName, marriage string) string {
	return husbandName + "|" + wifeName + "|" + marriage
}

func checkUniqueFamiliesBySpouses(ctx *check.Context) check.Findings {
	var f check.Findings

	count := make(map[string]int)
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Wife == nil || fam.Marriage == nil {
			continue
		}
		count[familyKey(fam.Husband.Name, fam.Wife.Name, fam.Marriage.String())]++
	}
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Wife == nil || fam.Marriage == nil {
			continue
		}
		key := familyKey(fam.Husband.Name, fam.Wife.Name, fam.Marriage.String())
		facts := map[string]any{
			"family_xref":   fam.Xref,
			"husband_name":  fam.Husband.Name,
			"wife_name":     fam.Wife.Name,
			"marriage_date": fam.Marriage.Fact(),
			"occurrences":   count[key],
		}
		if count[key] == 1 {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s of %s and %s married %s is unique",
				fam.Xref, fam.Husband.Name, fam.Wife.Name, fam.Marriage)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s of %s and %s married %s duplicates %d other record(s)",
				fam.Xref, fam.Husband.Name, fam.Wife.Name, fam.Marriage, count[key]-1)})
		}
	}
	return f
}
