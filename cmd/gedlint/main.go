// Package main provides the gedlint command-line interface.
package main

import (
	"os"

	"github.com/lineagelabs/gedlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
