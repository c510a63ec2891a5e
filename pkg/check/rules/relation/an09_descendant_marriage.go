package relation

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(NoMarriageToDescendant)
}

// NoMarriageToDescendant checks that neither spouse of a family is a
// descendant of the other, at unbounded depth.
var NoMarriageToDescendant = check.RuleDef{
	ID:          "AN09",
	Name:        "relation.no-descendant-marriage",
	Group:       "relation",
	Category:    check.CategoryAnomaly,
	Description: "Parents should not marry any of their descendants.",
	Check:       checkNoMarriageToDescendant,
}

func checkNoMarriageToDescendant(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Wife == nil {
			continue
		}
		facts := map[string]any{
			"family_xref":  fam.Xref,
			"husband_xref": fam.Husband.Xref,
			"wife_xref":    fam.Wife.Xref,
		}
		switch {
		case gedcom.IsDescendantOf(fam.Wife, fam.Husband):
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s marries %s to their descendant %s",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		case gedcom.IsDescendantOf(fam.Husband, fam.Wife):
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s marries %s to their descendant %s",
				fam.Xref, fam.Wife.Xref, fam.Husband.Xref)})
		default:
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s spouses %s and %s are not descendants of one another",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		}
	}
	return f
}
