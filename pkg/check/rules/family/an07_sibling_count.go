package family

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// maxSiblings is the plausibility bound on children per family.
const maxSiblings = 15

func init() {
	check.Register(SiblingCountBounded)
}

// SiblingCountBounded checks that a family has fewer than 15 children.
// Childless families are skipped.
var SiblingCountBounded = check.RuleDef{
	ID:          "AN07",
	Name:        "family.sibling-count-bounded",
	Group:       "family",
	Category:    check.CategoryAnomaly,
	Description: "There should be fewer than 15 siblings in a family.",
	Check:       checkSiblingCountBounded,
}

func checkSiblingCountBounded(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if len(fam.Children) == 0 {
			continue
		}
		facts := map[string]any{
			"family_xref": fam.Xref,
			"count":       len(fam.Children),
		}
		msg := fmt.Sprintf("family %s has %d children", fam.Xref, len(fam.Children))
		f.Add(len(fam.Children) < maxSiblings, check.Evidence{Facts: facts, Message: msg})
	}
	return f
}
