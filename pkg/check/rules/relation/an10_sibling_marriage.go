package relation

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(NoSiblingMarriage)
}

// NoSiblingMarriage checks that the spouses of a family are not siblings.
var NoSiblingMarriage = check.RuleDef{
	ID:          "AN10",
	Name:        "relation.no-sibling-marriage",
	Group:       "relation",
	Category:    check.CategoryAnomaly,
	Description: "Siblings should not marry one another.",
	Check:       checkNoSiblingMarriage,
}

func checkNoSiblingMarriage(ctx *check.Context) check.Findings {
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
		siblings := xrefSet(gedcom.Siblings(fam.Husband))
		if siblings[fam.Wife.Xref] {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s marries %s to their sibling %s",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		} else {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s spouses %s and %s are not siblings",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		}
	}
	return f
}
