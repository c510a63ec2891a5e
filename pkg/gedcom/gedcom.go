// Package gedcom provides the in-memory record graph for GEDCOM files:
// individuals and families with resolved cross-references, a temporal value
// type for event dates, and pure traversal helpers for deriving kinship.
// The graph is read-only once built; consistency rules never mutate it.
package gedcom

import "strings"

// Sex is the recorded sex of an individual.
type Sex int

// Recorded sex values.
const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// String returns the string representation of the sex.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Individual is a person record. Optional events and links are nil when the
// source carries no data for them; rules check presence before use.
type Individual struct {
	Xref string
	Line int
	Name string // GEDCOM form, e.g. "John /Smith/"
	Sex  Sex

	Birth *Date
	Death *Date

	// ChildOf lists families in which this individual is a child, in file
	// order. SpouseIn lists families in which they are husband or wife.
	ChildOf  []*Family
	SpouseIn []*Family
}

// Surname returns the part of the name between slashes, or "" if absent.
func (i *Individual) Surname() string {
	start := strings.Index(i.Name, "/")
	if start < 0 {
		return ""
	}
	rest := i.Name[start+1:]
	end := strings.Index(rest, "/")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// GivenName returns the name with surname markers stripped.
func (i *Individual) GivenName() string {
	if idx := strings.Index(i.Name, "/"); idx >= 0 {
		return strings.TrimSpace(i.Name[:idx])
	}
	return strings.TrimSpace(i.Name)
}

// Family is a union record. Husband, Wife and event dates are nil when
// absent; Children preserves the order of CHIL records.
type Family struct {
	Xref string
	Line int

	Husband  *Individual
	Wife     *Individual
	Children []*Individual

	Marriage *Date
	Divorce  *Date
}

// Spouses returns the present spouses of the family, husband first.
func (f *Family) Spouses() []*Individual {
	var out []*Individual
	if f.Husband != nil {
		out = append(out, f.Husband)
	}
	if f.Wife != nil {
		out = append(out, f.Wife)
	}
	return out
}

// EventDate is one dated event in the file, tagged with its owner. It backs
// the generic find-every-date query used by the date-not-in-future rule.
type EventDate struct {
	OwnerKind string // "INDI" or "FAM"
	OwnerXref string
	Tag       string // BIRT, DEAT, MARR, DIV
	Date      Date
}

// File is the record graph for one GEDCOM file. Individuals and Families
// preserve file order and keep duplicate xrefs (the uniqueness rule needs to
// see them); the lookup maps resolve to the first occurrence.
type File struct {
	Individuals []*Individual
	Families    []*Family

	indiByXref map[string]*Individual
	famByXref  map[string]*Family
}

// Individual returns the first individual recorded under xref.
func (f *File) Individual(xref string) (*Individual, bool) {
	i, ok := f.indiByXref[xref]
	return i, ok
}

// Family returns the first family recorded under xref.
func (f *File) Family(xref string) (*Family, bool) {
	fam, ok := f.famByXref[xref]
	return fam, ok
}

// EventDates enumerates every dated event in the file in record order,
// regardless of owner type.
func (f *File) EventDates() []EventDate {
	var out []EventDate
	for _, i := range f.Individuals {
		if i.Birth != nil {
			out = append(out, EventDate{OwnerKind: "INDI", OwnerXref: i.Xref, Tag: "BIRT", Date: *i.Birth})
		}
		if i.Death != nil {
			out = append(out, EventDate{OwnerKind: "INDI", OwnerXref: i.Xref, Tag: "DEAT", Date: *i.Death})
		}
	}
	for _, fam := range f.Families {
		if fam.Marriage != nil {
			out = append(out, EventDate{OwnerKind: "FAM", OwnerXref: fam.Xref, Tag: "MARR", Date: *fam.Marriage})
		}
		if fam.Divorce != nil {
			out = append(out, EventDate{OwnerKind: "FAM", OwnerXref: fam.Xref, Tag: "DIV", Date: *fam.Divorce})
		}
	}
	return out
}
