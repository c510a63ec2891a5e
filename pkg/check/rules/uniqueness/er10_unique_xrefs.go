package uniqueness

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(UniqueXrefs)
}

// UniqueXrefs checks that every individual and family xref appears exactly
// once. Each record sharing a duplicated xref fails once.
var UniqueXrefs = check.RuleDef{
	ID:          "ER10",
	Name:        "uniqueness.unique-xrefs",
	Group:       "uniqueness",
	Category:    check.CategoryError,
	Description: "All individual IDs and all family IDs must be unique.",
	Check:       checkUniqueXrefs,
}

func checkUniqueXrefs(ctx *check.Context) check.Findings {
	var f check.Findings

	indiCount := make(map[string]int)
	for _, indi := range ctx.File.Individuals {
		indiCount[indi.Xref]++
	}
	for _, indi := range ctx.File.Individuals {
		facts := map[string]any{
			"kind":        "INDI",
			"xref":        indi.Xref,
			"line_number": indi.Line,
			"occurrences": indiCount[indi.Xref],
		}
		if indiCount[indi.Xref] == 1 {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual xref %s is unique", indi.Xref)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"individual xref %s appears %d times (line %d)",
				indi.Xref, indiCount[indi.Xref], indi.Line)})
		}
	}

	famCount := make(map[string]int)
	for _, fam := range ctx.File.Families {
		famCount[fam.Xref]++
	}
	for _, fam := range ctx.File.Families {
		facts := map[string]any{
			"kind":        "FAM",
			"xref":        fam.Xref,
			"line_number": fam.Line,
			"occurrences": famCount[fam.Xref],
		}
		if famCount[fam.Xref] == 1 {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family xref %s is unique", fam.Xref)})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family xref %s appears %d times (line %d)",
				fam.Xref, famCount[fam.Xref], fam.Line)})
		}
	}
	return f
}
