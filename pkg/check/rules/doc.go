// Package rules aggregates the consistency-rule subpackages. Blank-import
// this package to make every rule available in the global registry.
package rules
