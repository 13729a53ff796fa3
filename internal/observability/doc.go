// Package observability provides the logger, the wizard observers that log
// and count wizard events, and the metrics registry they record into.
package observability
