package duration

import (
	"fmt"

	"github.com/lineagelabs/gedlint/pkg/check"
)

// maxLifespanYears is the plausibility bound on a recorded lifetime.
const maxLifespanYears = 150

func init() {
	check.Register(MaximumLifespan)
}

// MaximumLifespan checks that no individual lives 150 years or more. For
// living individuals the age is measured against the as-of date.
var MaximumLifespan = check.RuleDef{
	ID:          "ER07",
	Name:        "duration.maximum-lifespan",
	Group:       "duration",
	Category:    check.CategoryError,
	Description: "Death should be less than 150 years after birth; living individuals should be less than 150 years old.",
	Check:       checkMaximumLifespan,
}

func checkMaximumLifespan(ctx *check.Context) check.Findings {
	var f check.Findings
	for _, indi := range ctx.File.Individuals {
		if indi.Birth == nil {
			continue
		}
		facts := map[string]any{
			"individual_xref": indi.Xref,
			"birth_date":      indi.Birth.Fact(),
		}
		var age int
		var msg string
		if indi.Death != nil {
			age = indi.Death.YearsSince(*indi.Birth)
			facts["death_date"] = indi.Death.Fact()
			facts["age_at_death"] = age
			msg = fmt.Sprintf("individual %s was born %s and died %d years later on %s",
				indi.Xref, indi.Birth, age, indi.Death)
		} else {
			age = ctx.AsOf.YearsSince(*indi.Birth)
			facts["current_date"] = ctx.AsOf.String()
			facts["current_age"] = age
			msg = fmt.Sprintf("individual %s was born %s and is %d years old as of %s",
				indi.Xref, indi.Birth, age, ctx.AsOf)
		}
		f.Add(age < maxLifespanYears, check.Evidence{Facts: facts, Message: msg})
	}
	return f
}
