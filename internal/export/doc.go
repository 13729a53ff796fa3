// Package export writes wizard snapshots to disk as YAML or JSON and
// validates JSON snapshots against the embedded snapshot schema.
package export
