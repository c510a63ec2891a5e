// Package duration contains rules bounding spans between events: maximum
// lifespan, minimum marriage age, parent-child age gaps, sibling birth
// spacing, and the posthumous-birth window after a father's death.
package duration
