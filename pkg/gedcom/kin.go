package gedcom

// Unbounded disables the depth limit on ancestor/descendant traversal.
const Unbounded = -1

// Parents returns the present parents of an individual across every family
// in which they are a child, in file order, de-duplicated by xref.
func Parents(indi *Individual) []*Individual {
	var out []*Individual
	seen := map[string]bool{}
	for _, fam := range indi.ChildOf {
		for _, p := range fam.Spouses() {
			if !seen[p.Xref] {
				seen[p.Xref] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// Children returns the children of an individual across every family in
// which they are a spouse, in file order, de-duplicated by xref.
func Children(indi *Individual) []*Individual {
	var out []*Individual
	seen := map[string]bool{}
	for _, fam := range indi.SpouseIn {
		for _, c := range fam.Children {
			if !seen[c.Xref] {
				seen[c.Xref] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Siblings returns the union of children of every family in which the
// individual is a child, excluding the individual itself.
func Siblings(indi *Individual) []*Individual {
	var out []*Individual
	seen := map[string]bool{indi.Xref: true}
	for _, fam := range indi.ChildOf {
		for _, c := range fam.Children {
			if !seen[c.Xref] {
				seen[c.Xref] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Spouses returns the husband/wife counterparts across every family in which
// the individual is a spouse.
func Spouses(indi *Individual) []*Individual {
	var out []*Individual
	seen := map[string]bool{}
	for _, fam := range indi.SpouseIn {
		for _, s := range fam.Spouses() {
			if s.Xref == indi.Xref || seen[s.Xref] {
				continue
			}
			seen[s.Xref] = true
			out = append(out, s)
		}
	}
	return out
}

// walk runs a breadth-first traversal from indi following step, stopping at
// maxDepth generations (Unbounded for no limit). Visited xrefs are never
// re-entered, so traversal terminates even on a graph with ancestry cycles.
func walk(indi *Individual, maxDepth int, step func(*Individual) []*Individual) []*Individual {
	var out []*Individual
	visited := map[string]bool{indi.Xref: true}
	frontier := []*Individual{indi}
	for depth := 0; len(frontier) > 0 && (maxDepth == Unbounded || depth < maxDepth); depth++ {
		var next []*Individual
		for _, n := range frontier {
			for _, rel := range step(n) {
				if visited[rel.Xref] {
					continue
				}
				visited[rel.Xref] = true
				out = append(out, rel)
				next = append(next, rel)
			}
		}
		frontier = next
	}
	return out
}

// Ancestors returns every ancestor of indi within maxDepth generations.
func Ancestors(indi *Individual, maxDepth int) []*Individual {
	return walk(indi, maxDepth, Parents)
}

// Descendants returns every descendant of indi within maxDepth generations.
func Descendants(indi *Individual, maxDepth int) []*Individual {
	return walk(indi, maxDepth, Children)
}

// AncestorsAtDepth returns the ancestor generation exactly depth levels above
// indi (1 = parents, 2 = grandparents). An ancestor reachable at a shallower
// depth through another line is not repeated.
func AncestorsAtDepth(indi *Individual, depth int) []*Individual {
	visited := map[string]bool{indi.Xref: true}
	frontier := []*Individual{indi}
	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []*Individual
		for _, n := range frontier {
			for _, p := range Parents(n) {
				if visited[p.Xref] {
					continue
				}
				visited[p.Xref] = true
				next = append(next, p)
			}
		}
		frontier = next
	}
	return frontier
}

// IsDescendantOf reports whether ancestor appears anywhere in the unbounded
// ancestry of indi.
func IsDescendantOf(indi, ancestor *Individual) bool {
	for _, a := range Ancestors(indi, Unbounded) {
		if a.Xref == ancestor.Xref {
			return true
		}
	}
	return false
}

// MarriageInterval is the span a family's union is considered active. End is
// nil for an ongoing marriage, which compares later than any date.
type MarriageInterval struct {
	Family    *Family
	Start     Date
	End       *Date
	EndReason string // "divorce", "husband died", "wife died", or "ongoing"
}

// Open reports whether the interval has no recorded end.
func (mi MarriageInterval) Open() bool { return mi.End == nil }

// Overlaps reports whether two intervals share at least one day. The check is
// symmetric; open ends count as unbounded on either side.
func (mi MarriageInterval) Overlaps(o MarriageInterval) bool {
	startsBeforeEnd := func(start Date, end *Date) bool {
		return end == nil || start.Compare(*end) <= 0
	}
	return startsBeforeEnd(mi.Start, o.End) && startsBeforeEnd(o.Start, mi.End)
}

// MarriageIntervals derives one interval per dated marriage of the
// individual, in family file order. The end is the divorce date if present,
// else the earlier recorded spouse death, else open.
func MarriageIntervals(indi *Individual) []MarriageInterval {
	var out []MarriageInterval
	for _, fam := range indi.SpouseIn {
		if fam.Marriage == nil {
			continue
		}
		mi := MarriageInterval{Family: fam, Start: *fam.Marriage, EndReason: "ongoing"}
		switch {
		case fam.Divorce != nil:
			mi.End, mi.EndReason = fam.Divorce, "divorce"
		default:
			if fam.Husband != nil && fam.Husband.Death != nil {
				mi.End, mi.EndReason = fam.Husband.Death, "husband died"
			}
			if fam.Wife != nil && fam.Wife.Death != nil {
				if mi.End == nil || fam.Wife.Death.Before(*mi.End) {
					mi.End, mi.EndReason = fam.Wife.Death, "wife died"
				}
			}
		}
		out = append(out, mi)
	}
	return out
}
