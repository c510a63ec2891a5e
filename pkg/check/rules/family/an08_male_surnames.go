package family

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(MaleSurnamesMatch)
}

// MaleSurnamesMatch checks that the husband and all male children of a
// family share one surname. Families with fewer than two surnamed male
// members are skipped.
var MaleSurnamesMatch = check.RuleDef{
	ID:          "AN08",
	Name:        "family.male-surnames-match",
	Group:       "family",
	Category:    check.CategoryAnomaly,
	Description: "All male members of a family should have the same last name.",
	Check:       checkMaleSurnamesMatch,
}

func checkMaleSurnamesMatch(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		var males []*gedcom.Individual
		if fam.Husband != nil {
			males = append(males, fam.Husband)
		}
		for _, child := range fam.Children {
			if child.Sex == gedcom.SexMale {
				males = append(males, child)
			}
		}

		var xrefs []string
		surnames := make(map[string]bool)
		for _, m := range males {
			if s := m.Surname(); s != "" {
				xrefs = append(xrefs, m.Xref)
				surnames[s] = true
			}
		}
		if len(xrefs) < 2 {
			continue
		}

		names := make([]string, 0, len(surnames))
		for s := range surnames {
			names = append(names, s)
		}
		sort.Strings(names)
		facts := map[string]any{
			"family_xref": fam.Xref,
			"male_xrefs":  xrefs,
			"surnames":    names,
		}
		if len(surnames) == 1 {
			f.Pass(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s male members share surname %s", fam.Xref, names[0])})
		} else {
			f.Fail(check.Evidence{Facts: facts, Message: fmt.Sprintf(
				"family %s male members carry different surnames: %s",
				fam.Xref, strings.Join(names, ", "))})
		}
	}
	return f
}
