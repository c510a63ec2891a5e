package relation

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(NoFirstCousinMarriage)
}

// NoFirstCousinMarriage checks that the spouses of a family are not first
// cousins: sharing a grandparent without sharing a parent. Families where
// either spouse has no recorded grandparents are skipped.
var NoFirstCousinMarriage = check.RuleDef{
	ID:          "AN11",
	Name:        "relation.no-first-cousin-marriage",
	Group:       "relation",
	Category:    check.CategoryAnomaly,
	Description: "First cousins should not marry one another.",
	Check:       checkNoFirstCousinMarriage,
}

func checkNoFirstCousinMarriage(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Wife == nil {
			continue
		}
		husbGrand := gedcom.AncestorsAtDepth(fam.Husband, 2)
		wifeGrand := gedcom.AncestorsAtDepth(fam.Wife, 2)
		if len(husbGrand) == 0 || len(wifeGrand) == 0 {
			continue
		}
		facts := map[string]any{
			"family_xref":  fam.Xref,
			"husband_xref": fam.Husband.Xref,
			"wife_xref":    fam.Wife.Xref,
		}
		sharedGrandparent := intersects(husbGrand, xrefSet(wifeGrand))
		sharedParent := intersects(gedcom.Parents(fam.Husband), xrefSet(gedcom.Parents(fam.Wife)))
		if sharedGrandparent && !sharedParent {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s marries first cousins %s and %s",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		} else {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s spouses %s and %s are not first cousins",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		}
	}
	return f
}
