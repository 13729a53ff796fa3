// Package handlers implements the business logic for CLI commands.
//
// Dependencies with side effects (terminal detection, the TUI, prompts and
// file writes) are package-level function variables so tests can replace
// them.
package handlers
