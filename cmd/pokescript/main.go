// Package main is the entry point for the pokescript CLI.
package main

import (
	"os"

	"github.com/mimiqdev/pokescript/cmd/pokescript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
