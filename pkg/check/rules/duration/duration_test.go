package duration_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/check/rules/duration"
	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func runRule(t *testing.T, rule check.RuleDef, src string) check.Findings {
	t.Helper()
	f, err := gedcom.Parse(strings.NewReader(strings.TrimSpace(src)))
	require.NoError(t, err)
	asOf, err := gedcom.ParseDate("1 JAN 2020", 0)
	require.NoError(t, err)
	return rule.Check(&check.Context{File: f, AsOf: asOf})
}

func TestMaximumLifespan(t *testing.T) {
	f := runRule(t, duration.MaximumLifespan, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1900
1 DEAT
2 DATE 1 JAN 1999
0 @I2@ INDI
1 BIRT
2 DATE 1 JAN 1800
1 DEAT
2 DATE 1 JAN 1950
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I2", f.Failed[0].Facts["individual_xref"])
	assert.Equal(t, 150, f.Failed[0].Facts["age_at_death"])
}

func TestMaximumLifespanLivingUsesAsOf(t *testing.T) {
	// No death date: age is measured against the as-of date (2020-01-01).
	f := runRule(t, duration.MaximumLifespan, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1860
`)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, 160, f.Failed[0].Facts["current_age"])
}

func TestBirthBeforeParentDeath(t *testing.T) {
	// Child born after the mother's death.
	f := runRule(t, duration.BirthBeforeParentDeath, `
0 @I1@ INDI
1 SEX F
1 DEAT
2 DATE 1 JAN 1970
0 @I2@ INDI
1 BIRT
2 DATE 1 JUN 1970
0 @F1@ FAM
1 WIFE @I1@
1 CHIL @I2@
`)
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I2", f.Failed[0].Facts["child_xref"])
}

func TestBirthWithinNineMonthsOfFatherDeath(t *testing.T) {
	// 8 x 30 days after the father's death is inside the window; a year
	// and a half after is not.
	src := `
0 @I1@ INDI
1 SEX M
1 DEAT
2 DATE 1 JAN 1970
0 @I2@ INDI
1 BIRT
2 DATE %s
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
`
	f := runRule(t, duration.BirthBeforeParentDeath, fmt.Sprintf(src, "29 AUG 1970"))
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)

	f = runRule(t, duration.BirthBeforeParentDeath, fmt.Sprintf(src, "1 JUL 1971"))
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
}

func TestBirthBeforeParentDeathSkipsLivingParents(t *testing.T) {
	f := runRule(t, duration.BirthBeforeParentDeath, `
0 @I1@ INDI
1 SEX F
0 @I2@ INDI
1 BIRT
2 DATE 1 JUN 1970
0 @F1@ FAM
1 WIFE @I1@
1 CHIL @I2@
`)
	assert.Empty(t, f.Passed)
	assert.Empty(t, f.Failed)
}

func TestMinimumMarriageAge(t *testing.T) {
	src := `
0 @I1@ INDI
1 SEX M
1 BIRT
2 DATE 1 JAN 1950
0 @I2@ INDI
1 SEX F
1 BIRT
2 DATE 1 JAN %s
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JAN 1980
`
	// Wife married on her 14th birthday: at least 14, passes.
	f := runRule(t, duration.MinimumMarriageAge, fmt.Sprintf(src, "1966"))
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)

	// Wife aged 13 at marriage: fails.
	f = runRule(t, duration.MinimumMarriageAge, fmt.Sprintf(src, "1967"))
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, 13, f.Failed[0].Facts["wife_marriage_age"])
}

func TestParentChildAgeGap(t *testing.T) {
	src := `
0 @I1@ INDI
1 SEX M
1 BIRT
2 DATE 1 JAN %s
0 @I2@ INDI
1 SEX F
1 BIRT
2 DATE 1 JAN 1950
0 @I3@ INDI
1 BIRT
2 DATE 1 JAN 1990
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
`
	f := runRule(t, duration.ParentChildAgeGap, fmt.Sprintf(src, "1950"))
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)

	// Father 90 years older than the child.
	f = runRule(t, duration.ParentChildAgeGap, fmt.Sprintf(src, "1900"))
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, 90, f.Failed[0].Facts["father_years_older"])
}

func TestSiblingSpacingBoundaries(t *testing.T) {
	src := `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1980
0 @I2@ INDI
1 BIRT
2 DATE %s
0 @F1@ FAM
1 CHIL @I1@
1 CHIL @I2@
`
	tests := []struct {
		name   string
		birth  string
		passed bool
	}{
		{"2 days apart", "3 JAN 1980", true},
		{"3 days apart", "4 JAN 1980", false},
		{"240 days apart", "28 AUG 1980", false},
		{"241 days apart", "29 AUG 1980", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := runRule(t, duration.SiblingSpacing, fmt.Sprintf(src, tt.birth))
			if tt.passed {
				assert.Len(t, f.Passed, 1)
				assert.Empty(t, f.Failed)
			} else {
				assert.Empty(t, f.Passed)
				assert.Len(t, f.Failed, 1)
			}
		})
	}
}
