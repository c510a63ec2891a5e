package uniqueness_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/check/rules/uniqueness"
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

func TestUniqueXrefs(t *testing.T) {
	f := runRule(t, uniqueness.UniqueXrefs, `
0 @I1@ INDI
1 NAME First /One/
0 @I1@ INDI
1 NAME Second /One/
0 @I2@ INDI
1 NAME Only /Two/
0 @F1@ FAM
`)
	// Both records behind the duplicated xref fail; I2 and F1 pass.
	require.Len(t, f.Failed, 2)
	require.Len(t, f.Passed, 2)
	assert.Equal(t, "I1", f.Failed[0].Facts["xref"])
	assert.Equal(t, "I1", f.Failed[1].Facts["xref"])
	assert.Equal(t, 2, f.Failed[0].Facts["occurrences"])
}

func TestUniqueNameAndBirth(t *testing.T) {
	f := runRule(t, uniqueness.UniqueNameAndBirth, `
0 @I1@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 2 JAN 1940
0 @I2@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 2 JAN 1940
0 @I3@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 5 MAY 1945
`)
	// Each offender appears in failed exactly once, not once per pairing.
	require.Len(t, f.Failed, 2)
	assert.Equal(t, "I1", f.Failed[0].Facts["xref"])
	assert.Equal(t, "I2", f.Failed[1].Facts["xref"])
	require.Len(t, f.Passed, 1)
	assert.Equal(t, "I3", f.Passed[0].Facts["xref"])
}

func TestUniqueNameAndBirthSkipsUndated(t *testing.T) {
	f := runRule(t, uniqueness.UniqueNameAndBirth, `
0 @I1@ INDI
1 NAME John /Smith/
0 @I2@ INDI
1 NAME John /Smith/
`)
	assert.Empty(t, f.Passed)
	assert.Empty(t, f.Failed)
}

func TestUniqueFamiliesBySpouses(t *testing.T) {
	f := runRule(t, uniqueness.UniqueFamiliesBySpouses, `
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
0 @I2@ INDI
1 NAME Mary /Jones/
1 SEX F
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JUN 1970
0 @F2@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JUN 1970
0 @F3@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1 JUN 1990
`)
	require.Len(t, f.Failed, 2)
	assert.Equal(t, "F1", f.Failed[0].Facts["family_xref"])
	assert.Equal(t, "F2", f.Failed[1].Facts["family_xref"])
	require.Len(t, f.Passed, 1)
	assert.Equal(t, "F3", f.Passed[0].Facts["family_xref"])
}
