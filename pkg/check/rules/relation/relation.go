package relation

import "github.com/lineagelabs/gedlint/pkg/gedcom"

// xrefSet keys a set of individuals by identifier.
func xrefSet(individuals []*gedcom.Individual) map[string]bool {
	set := make(map[string]bool, len(individuals))
	for _, i := range individuals {
		set[i.Xref] = true
	}
	return set
}

// intersects reports whether any member of a is in b.
func intersects(a []*gedcom.Individual, b map[string]bool) bool {
	for _, i := range a {
		if b[i.Xref] {
			return true
		}
	}
	return false
}
