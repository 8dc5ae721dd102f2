// Package main is the entry point for the robustpade CLI.
package main

import (
	"os"

	"github.com/tuneinsight/robustpade/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
