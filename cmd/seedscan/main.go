// Package main is the entry point for the seedscan CLI tool.
package main

import (
	"os"

	"github.com/corvusworks/seedscan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
