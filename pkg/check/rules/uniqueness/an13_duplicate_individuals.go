package uniqueness

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(UniqueNameAndBirth)
}

// UniqueNameAndBirth checks that no two individuals share both a name and a
// birth date. Every offender fails exactly once, not once per pairing.
// Individuals missing a name or birth date are skipped.
var UniqueNameAndBirth = check.RuleDef{
	ID:          "AN13",
	Name:        "uniqueness.unique-name-and-birth",
	Group:       "uniqueness",
	Category:    check.CategoryAnomaly,
	Description: "No more than one individual with the same name and birth date should appear.",
	Check:       checkUniqueNameAndBirth,
}

func checkUniqueNameAndBirth(ctx *check.Context) check.Findings {
	var f check.Findings

	count := make(map[string]int)
	for _, indi := range ctx.File.Individuals {
		if indi.Name == "" || indi.Birth == nil {
			continue
		}
		count[indi.Name+"|"+indi.Birth.String()]++
	}
	for _, indi := range ctx.File.Individuals {
		if indi.Name == "" || indi.Birth == nil {
			continue
		}
		key := indi.Name + "|" + indi.Birth.String()
		facts := map[string]any{
			"xref":        indi.Xref,
			"name":        indi.Name,
			"birth_date":  indi.Birth.Fact(),
			"occurrences": count[key],
		}
		if count[key] == 1 {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual %s %s born %s is unique", indi.Xref, indi.Name, indi.Birth)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual %s %s born %s duplicates %d other record(s)",
				indi.Xref, indi.Name, indi.Birth, count[key]-1)})
		}
	}
	return f
}
