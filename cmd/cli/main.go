// Package main is the entry point for the gerber-estimate CLI.
package main

import (
	"os"

	"gerber-estimate/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
