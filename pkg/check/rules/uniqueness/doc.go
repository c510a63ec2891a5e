// Package uniqueness contains rules that detect duplicated records:
// repeated xrefs, individuals sharing a name and birth date, and families
// sharing spouse names and a marriage date.
package uniqueness
