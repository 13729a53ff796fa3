// Package config loads the roleready runtime configuration.
//
// Values are resolved in increasing order of precedence: built-in defaults,
// an optional YAML config file, a .env file in the working directory, and
// ROLEREADY_* environment variables. Command line flags are applied on top
// by the CLI.
package config
