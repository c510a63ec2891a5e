package family_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/check"
	"github.com/lineagelabs/gedlint/pkg/check/rules/family"
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

func TestGenderMatchesRole(t *testing.T) {
	f := runRule(t, family.GenderMatchesRole, `
0 @I1@ INDI
1 SEX F
0 @I2@ INDI
1 SEX F
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
`)
	require.Len(t, f.Passed, 1)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, "husband", f.Failed[0].Facts["role"])
	assert.Equal(t, "I1", f.Failed[0].Facts["individual_xref"])
}

func TestGenderRoleSkipsUnknownSex(t *testing.T) {
	f := runRule(t, family.GenderMatchesRole, `
0 @I1@ INDI
1 NAME Unsexed /Person/
0 @F1@ FAM
1 HUSB @I1@
`)
	assert.Empty(t, f.Passed)
	assert.Empty(t, f.Failed)
}

func TestMultipleBirthsBounded(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		b.WriteString("0 @I")
		b.WriteByte(byte('0' + i))
		b.WriteString("@ INDI\n1 BIRT\n2 DATE 1 JAN 1980\n")
	}
	b.WriteString("0 @F1@ FAM\n")
	for i := 1; i <= 6; i++ {
		b.WriteString("1 CHIL @I")
		b.WriteByte(byte('0' + i))
		b.WriteString("@\n")
	}

	f := runRule(t, family.MultipleBirthsBounded, b.String())
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, 6, f.Failed[0].Facts["count"])
}

func TestTwinsPass(t *testing.T) {
	f := runRule(t, family.MultipleBirthsBounded, `
0 @I1@ INDI
1 BIRT
2 DATE 1 JAN 1980
0 @I2@ INDI
1 BIRT
2 DATE 1 JAN 1980
0 @F1@ FAM
1 CHIL @I1@
1 CHIL @I2@
`)
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)
}

func TestSiblingCountBounded(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "0 @I%02d@ INDI\n", i)
	}
	b.WriteString("0 @F1@ FAM\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "1 CHIL @I%02d@\n", i)
	}

	f := runRule(t, family.SiblingCountBounded, b.String())
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.Equal(t, 15, f.Failed[0].Facts["count"])
}

func TestMaleSurnamesMatch(t *testing.T) {
	f := runRule(t, family.MaleSurnamesMatch, `
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
0 @I2@ INDI
1 NAME Bob /Jones/
1 SEX M
0 @I3@ INDI
1 NAME Anne /Other/
1 SEX F
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
1 CHIL @I3@
`)
	assert.Empty(t, f.Passed)
	require.Len(t, f.Failed, 1)
	assert.ElementsMatch(t, []string{"Jones", "Smith"}, f.Failed[0].Facts["surnames"])
}

func TestMaleSurnamesMatchPass(t *testing.T) {
	f := runRule(t, family.MaleSurnamesMatch, `
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
0 @I2@ INDI
1 NAME Bob /Smith/
1 SEX M
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
`)
	require.Len(t, f.Passed, 1)
	assert.Empty(t, f.Failed)
}
