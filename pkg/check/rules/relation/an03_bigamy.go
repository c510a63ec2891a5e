package relation

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func init() {
	check.Register(NoBigamy)
}

// NoBigamy checks every pair of an individual's marriage intervals for
// overlap. An interval without a recorded end (no divorce, no spousal
// death) counts as ongoing on both sides of the comparison.
var NoBigamy = check.RuleDef{
	ID:          "AN03",
	Name:        "relation.no-bigamy",
	Group:       "relation",
	Category:    check.CategoryAnomaly,
	Description: "Marriage should not occur during marriage to another spouse.",
	Check:       checkNoBigamy,
}

func checkNoBigamy(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, indi := range ctx.File.Individuals {
		intervals := gedcom.MarriageIntervals(indi)
		for a := 0; a < len(intervals); a++ {
			for b := a + 1; b < len(intervals); b++ {
				one, two := intervals[a], intervals[b]
				facts := map[string]any{
					"individual_xref": indi.Xref,
					"family_one":      intervalFacts(one),
					"family_two":      intervalFacts(two),
				}
				msg := fmt.Sprintf(
					"individual %s is in marriage %s starting %s ending %s and in marriage %s starting %s ending %s",
					indi.Xref,
					one.Family.Xref, one.Start, intervalEnd(one),
					two.Family.Xref, two.Start, intervalEnd(two))
				f.Add(!one.Overlaps(two), check.Evidence{Facts: facts, Message: msg})
			}
		}
	}
	return f
}

func intervalFacts(iv gedcom.MarriageInterval) map[string]any {
	facts := map[string]any{
		"xref":          iv.Family.Xref,
		"marriage_date": iv.Start.Fact(),
		"end_reason":    iv.EndReason,
	}
	if iv.End != nil {
		facts["end_date"] = iv.End.Fact()
	}
	return facts
}

func intervalEnd(iv gedcom.MarriageInterval) string {
	if iv.End == nil {
		return "never (" + iv.EndReason + ")"
	}
	return fmt.Sprintf("%s (%s)", iv.End, iv.EndReason)
}
