package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/lineagelabs/gedlint/pkg/check/rules/duration"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules/family"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules/ordering"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules/relation"
	_ "github.com/lineagelabs/gedlint/pkg/check/rules/uniqueness"
)
