// Package family contains rules over the shape of a single family record:
// spouse roles matching recorded sex, multiple-birth size, total sibling
// count, and male members sharing a surname.
package family
