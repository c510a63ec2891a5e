package relation

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(NoAuntUncleMarriage)
}

// NoAuntUncleMarriage checks that no spouse is the aunt or uncle of the
// other, detected as one spouse's parents being the other's grandparents.
// Families where neither spouse has recorded parents are skipped.
var NoAuntUncleMarriage = check.RuleDef{
	ID:          "AN12",
	Name:        "relation.no-aunt-uncle-marriage",
	Group:       "relation",
	Category:    check.CategoryAnomaly,
	Description: "Aunts and uncles should not marry their nieces or nephews.",
	Check:       checkNoAuntUncleMarriage,
}

func checkNoAuntUncleMarriage(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Husband == nil || fam.Wife == nil {
			continue
		}
		husbParents := gedcom.Parents(fam.Husband)
		wifeParents := gedcom.Parents(fam.Wife)
		if len(husbParents) == 0 && len(wifeParents) == 0 {
			continue
		}
		facts := map[string]any{
			"family_xref":  fam.Xref,
			"husband_xref": fam.Husband.Xref,
			"wife_xref":    fam.Wife.Xref,
		}
		husbandIsUncle := intersects(husbParents, xrefSet(gedcom.AncestorsAtDepth(fam.Wife, 2)))
		wifeIsAunt := intersects(wifeParents, xrefSet(gedcom.AncestorsAtDepth(fam.Husband, 2)))
		if husbandIsUncle || wifeIsAunt {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s marries %s and %s who are aunt/uncle and niece/nephew",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		} else {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s spouses %s and %s are not aunt/uncle and niece/nephew",
				fam.Xref, fam.Husband.Xref, fam.Wife.Xref)})
		}
	}
	return f
}
