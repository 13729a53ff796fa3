// Package answers loads a YAML answers file and replays it through a
// wizard.Controller, filling the wizard without a terminal.
package answers
