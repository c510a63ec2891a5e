// Package ordering contains rules that require one life event to precede
// another: no future dates, birth before marriage and death, marriage before
// divorce and spousal death, and children born inside the parents' marriage.
package ordering
