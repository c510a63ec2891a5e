package ordering

import (
	"github.com/lineagelabs/gedlint/pkg/check"
)

func init() {
	check.Register(DivorceBeforeDeath)
}

// DivorceBeforeDeath checks that a divorce precedes the death of either
// spouse. One Evidence entry is produced per spouse with a recorded death
// date.
var DivorceBeforeDeath = check.RuleDef{
	ID:          "ER06",
	Name:        "ordering.divorce-before-death",
	Group:       "ordering",
	Category:    check.CategoryError,
	Description: "Divorce can only occur before the death of both spouses.",
	Check:       checkDivorceBeforeDeath,
}

func checkDivorceBeforeDeath(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, fam := range ctx.File.Families {
		if fam.Divorce == nil {
			continue
		}
		spouseEvidence(&f, fam, "husband", fam.Husband, *fam.Divorce, "divorce")
		spouseEvidence(&f, fam, "wife", fam.Wife, *fam.Divorce, "divorce")
	}
	return f
}
