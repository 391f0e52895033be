// Package main provides the docmerge CLI.
package main

import (
	"os"

	"github.com/example/docmerge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
