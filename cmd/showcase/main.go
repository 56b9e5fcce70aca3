// Package main provides the showcase CLI.
package main

import (
	"os"

	"github.com/ticuv/showcase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
