package gedcom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagelabs/gedlint/pkg/gedcom"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     time.Time
		wantGran gedcom.Granularity
		wantErr  bool
	}{
		{
			name:     "full date",
			value:    "2 JAN 1990",
			want:     time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC),
			wantGran: gedcom.GranularityDay,
		},
		{
			name:     "month and year",
			value:    "JUN 1975",
			want:     time.Date(1975, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantGran: gedcom.GranularityMonth,
		},
		{
			name:     "year only",
			value:    "1820",
			want:     time.Date(1820, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantGran: gedcom.GranularityYear,
		},
		{
			name:     "lowercase month",
			value:    "15 mar 2001",
			want:     time.Date(2001, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantGran: gedcom.GranularityDay,
		},
		{
			name:    "unknown month",
			value:   "3 FOO 1990",
			wantErr: true,
		},
		{
			name:    "garbage",
			value:   "ABT SOMETIME LONG AGO",
			wantErr: true,
		},
		{
			name:    "non-numeric year",
			value:   "JAN NINETY",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := gedcom.ParseDate(tt.value, 7)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Time().Equal(tt.want), "resolved %s, want %s", d.Time(), tt.want)
			assert.Equal(t, tt.wantGran, d.Granularity())
			assert.Equal(t, tt.value, d.Raw())
			assert.Equal(t, 7, d.Line())
		})
	}
}

func TestDateEqualityIgnoresFormatting(t *testing.T) {
	a, err := gedcom.ParseDate("2 JAN 1990", 1)
	require.NoError(t, err)
	b, err := gedcom.ParseDate("02 jan 1990", 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.NotEqual(t, a.Raw(), b.Raw())
}

func TestDateOrdering(t *testing.T) {
	early, err := gedcom.ParseDate("1 JAN 1990", 1)
	require.NoError(t, err)
	late, err := gedcom.ParseDate("2 JAN 1990", 2)
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.Equal(t, -1, early.Compare(late))
	assert.Equal(t, 1, late.Compare(early))
}

func TestDaysSince(t *testing.T) {
	a, err := gedcom.ParseDate("1 JAN 1990", 1)
	require.NoError(t, err)
	b, err := gedcom.ParseDate("31 JAN 1990", 2)
	require.NoError(t, err)

	assert.Equal(t, 30, b.DaysSince(a))
	assert.Equal(t, -30, a.DaysSince(b))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestYearsSince(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"exact anniversary", "15 MAR 1960", "15 MAR 1990", 30},
		{"day before anniversary", "15 MAR 1960", "14 MAR 1990", 29},
		{"day after anniversary", "15 MAR 1960", "16 MAR 1990", 30},
		{"same date", "15 MAR 1960", "15 MAR 1960", 0},
		{"reversed is negated", "15 MAR 1990", "15 MAR 1960", -30},
		{"not a fixed 365-day divisor", "1 JAN 2000", "31 DEC 2000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := gedcom.ParseDate(tt.from, 1)
			require.NoError(t, err)
			to, err := gedcom.ParseDate(tt.to, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, to.YearsSince(from))
		})
	}
}

func TestYearsSinceMonotonic(t *testing.T) {
	base, err := gedcom.ParseDate("10 JUL 1950", 1)
	require.NoError(t, err)

	// Advancing the measured date by exactly one calendar year advances the
	// result by exactly one.
	prev := base
	for i := 1; i <= 5; i++ {
		next := gedcom.DateOf(prev.Time().AddDate(1, 0, 0))
		assert.Equal(t, prev.YearsSince(base)+1, next.YearsSince(base), "year %d", i)
		prev = next
	}
}

func TestDateFact(t *testing.T) {
	d, err := gedcom.ParseDate("2 JAN 1990", 42)
	require.NoError(t, err)

	fact := d.Fact()
	assert.Equal(t, "2 JAN 1990", fact.Raw)
	assert.Equal(t, "1990-01-02", fact.Resolved)
	assert.Equal(t, 42, fact.Line)
}
