package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Granularity records how much of a calendar date the source actually carried.
type Granularity int

// Granularity levels, coarsest first.
const (
	GranularityYear Granularity = iota
	GranularityMonth
	GranularityDay
)

// String returns the string representation of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityYear:
		return "year"
	case GranularityMonth:
		return "month"
	case GranularityDay:
		return "day"
	default:
		return "unknown"
	}
}

// Date is a comparable calendar point resolved from a GEDCOM DATE line.
// It keeps the raw line text and line number for traceability; comparisons
// and durations use only the resolved calendar date. Missing day or month
// components resolve to the first of the period, recorded by Granularity.
type Date struct {
	time time.Time
	raw  string
	line int
	gran Granularity
}

// DateFact is the denormalized form of a Date used in Evidence output.
// It carries no time handle, only representations safe to persist.
type DateFact struct {
	Raw      string `json:"raw"`
	Resolved string `json:"resolved"`
	Line     int    `json:"line_number"`
}

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseDate resolves a GEDCOM date value ("2 JAN 1990", "JAN 1990", "1990")
// into a Date. The line argument is the source line number of the DATE record.
func ParseDate(value string, line int) (Date, error) {
	fields := strings.Fields(strings.TrimSpace(value))

	var (
		day   = 1
		month = time.January
		gran  Granularity
		year  int
		err   error
	)

	switch len(fields) {
	case 1:
		gran = GranularityYear
		year, err = strconv.Atoi(fields[0])
	case 2:
		gran = GranularityMonth
		var ok bool
		if month, ok = months[strings.ToUpper(fields[0])]; !ok {
			return Date{}, fmt.Errorf("line %d: unknown month %q", line, fields[0])
		}
		year, err = strconv.Atoi(fields[1])
	case 3:
		gran = GranularityDay
		if day, err = strconv.Atoi(fields[0]); err != nil {
			return Date{}, fmt.Errorf("line %d: invalid day %q", line, fields[0])
		}
		var ok bool
		if month, ok = months[strings.ToUpper(fields[1])]; !ok {
			return Date{}, fmt.Errorf("line %d: unknown month %q", line, fields[1])
		}
		year, err = strconv.Atoi(fields[2])
	default:
		return Date{}, fmt.Errorf("line %d: unparseable date %q", line, value)
	}
	if err != nil {
		return Date{}, fmt.Errorf("line %d: invalid year in date %q", line, value)
	}

	return Date{
		time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		raw:  value,
		line: line,
		gran: gran,
	}, nil
}

// DateOf builds a Date from an explicit calendar day. Used by callers that
// already hold a time.Time (the as-of clock) and by tests.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{
		time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		raw:  t.Format("2 Jan 2006"),
		gran: GranularityDay,
	}
}

// Time returns the resolved calendar date at midnight UTC.
func (d Date) Time() time.Time { return d.time }

// Raw returns the original date text from the source line.
func (d Date) Raw() string { return d.raw }

// Line returns the source line number, or zero for synthesized dates.
func (d Date) Line() int { return d.line }

// Granularity reports which components the source date carried.
func (d Date) Granularity() Granularity { return d.gran }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.time.IsZero() }

// Equal reports whether both dates resolve to the same calendar day,
// regardless of original formatting.
func (d Date) Equal(o Date) bool { return d.time.Equal(o.time) }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.time.Before(o.time) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.time.After(o.time) }

// Compare returns -1, 0, or 1 ordering d against o.
func (d Date) Compare(o Date) int { return d.time.Compare(o.time) }

// DaysSince returns the signed number of whole days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.time.Sub(o.time) / (24 * time.Hour))
}

// YearsSince returns the signed number of whole calendar years from o to d,
// computed by year/month/day comparison rather than day-count division.
func (d Date) YearsSince(o Date) int {
	if d.time.Before(o.time) {
		return -o.YearsSince(d)
	}
	years := d.time.Year() - o.time.Year()
	anniversary := time.Date(o.time.Year()+years, o.time.Month(), o.time.Day(), 0, 0, 0, 0, time.UTC)
	if d.time.Before(anniversary) {
		years--
	}
	return years
}

// String renders the resolved date in ISO form.
func (d Date) String() string { return d.time.Format("2006-01-02") }

// Fact returns the denormalized evidence form of the date.
func (d Date) Fact() DateFact {
	return DateFact{Raw: d.raw, Resolved: d.String(), Line: d.line}
}
