// Package main is the entry point for voidkeys.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/voidkeys/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCmd(version, commit, date).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
