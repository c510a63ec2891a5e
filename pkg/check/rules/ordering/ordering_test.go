package ordering_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/check/rules/ordering"
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

func TestDatesBeforeCurrent(t *testing.T) {
	f := runRule(t, ordering.DatesBeforeCurrent, `
0 @I1@ INDI
1 BIRT
2 DATE 2 JAN 1940
0 @I2@ INDI
1 BIRT
2 DATE 2 JAN 2150
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I2", f.Failed[0].Facts["owner_xref"])
	assert.Contains(t, f.Failed[0].Message, "after 2020-01-01")
}

func TestDatesBeforeCurrentAcceptsToday(t *testing.T) {
	f := runRule(t, ordering.DatesBeforeCurrent, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 2020
`)
	assert.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)
}

func TestBirthBeforeMarriage(t *testing.T) {
	f := runRule(t, ordering.BirthBeforeMarriage, `
0 @I1@ INDI
1 BIRT
2 DATE 2 JAN 1940
0 @I2@ INDI
1 BIRT
2 DATE 2 JAN 1975
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JUN 1970
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I1", f.Passed[0].Facts["individual_xref"])
	assert.Equal(t, "I2", f.Failed[0].Facts["individual_xref"])
}

func TestBirthBeforeDeath(t *testing.T) {
	f := runRule(t, ordering.BirthBeforeDeath, `
0 @I1@ INDI
1 BIRT
2 DATE 2 JAN 1940
1 DEAT
2 DATE 10 AUG 2010
0 @I2@ INDI
1 BIRT
2 DATE 2 JAN 1940
1 DEAT
2 DATE 1 JAN 1930
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I2", f.Failed[0].Facts["individual_xref"])
}

func TestMissingBirthDateIsExcluded(t *testing.T) {
	// An individual without a birth date appears in neither list of any
	// rule that needs one.
	src := `
0 @I1@ INDI
1 NAME No /Birth/
1 DEAT
2 DATE 10 AUG 2010
0 @F1@ FAM
1 HUSB @I1@
1 MARR
2 DATE 1 JUN 1970
`
	for _, rule := range []check.RuleDef{ordering.BirthBeforeMarriage, ordering.BirthBeforeDeath} {
		f := runRule(t, rule, src)
		assert.Empty(t, f.Passed, rule.ID)
		assert.Empty(t, f.Failed, rule.ID)
	}
}

func TestMarriageBeforeDivorce(t *testing.T) {
	f := runRule(t, ordering.MarriageBeforeDivorce, `
0 @F1@ FAM
1 MARR
2 DATE 1 JUN 1970
1 DIV
2 DATE 1 JUN 1980
0 @F2@ FAM
1 MARR
2 DATE 1 JUN 1990
1 DIV
2 DATE 1 JUN 1980
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "F2", f.Failed[0].Facts["family_xref"])
}

func TestMarriageBeforeSpouseDeath(t *testing.T) {
	f := runRule(t, ordering.MarriageBeforeSpouseDeath, `
0 @I1@ INDI
1 SEX M
1 DEAT
2 DATE 1 JAN 1960
0 @I2@ INDI
1 SEX F
1 DEAT
2 DATE 1 JAN 1990
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JUN 1970
`)
	// Husband died before the marriage, wife after.
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "husband", f.Failed[0].Facts["role"])
	assert.Equal(t, "wife", f.Passed[0].Facts["role"])
}

func TestDivorceBeforeDeath(t *testing.T) {
	f := runRule(t, ordering.DivorceBeforeDeath, `
0 @I1@ INDI
1 SEX M
1 DEAT
2 DATE 1 JAN 1975
0 @I2@ INDI
1 SEX F
1 DEAT
2 DATE 1 JAN 1990
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 DIV
2 DATE 1 JUN 1980
`)
	// Divorce after the husband's death fails; before the wife's passes.
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "husband", f.Failed[0].Facts["role"])
	assert.Equal(t, "wife", f.Passed[0].Facts["role"])
}

func TestBirthInsideParentsMarriage(t *testing.T) {
	// Marriage 1990-06-01, child born 1991-01-01, no divorce: passes.
	f := runRule(t, ordering.BirthInsideParentsMarriage, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1991
0 @F1@ FAM
1 CHIL @I1@
1 MARR
2 DATE 1 JUN 1990
`)
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)

	// Same family with a divorce on 1990-12-01: the child is born after
	// the divorce and the same rule fails.
	f = runRule(t, ordering.BirthInsideParentsMarriage, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1991
0 @F1@ FAM
1 CHIL @I1@
1 MARR
2 DATE 1 JUN 1990
1 DIV
2 DATE 1 DEC 1990
`)
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "I1", f.Failed[0].Facts["child_xref"])
}
