// Package relation contains rules over kinship between spouses: bigamy via
// overlapping marriage intervals, and the prohibitions on marrying a
// descendant, a sibling, a first cousin, or a niece/nephew.
package relation
