// Package main is the entry point for the roleready CLI.
//
// roleready collects résumé data through a three-step terminal wizard:
// profile questions, a target role and a template choice. The captured
// snapshot is logged and can be exported as YAML or JSON.
//
// Commands: build, catalog, validate, version, completion.
//
// For detailed usage information, run:
//
//	roleready --help
package main

import (
	"fmt"
	"os"

	"github.com/roleready/roleready/cmd/roleready/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
