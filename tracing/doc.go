// Package tracing is a thin wrapper around OpenTelemetry tracing used by
// the fsm engine to record one span per machine run. All instrumentation is
// kept in a separate package so that applications which do not initialise a
// trace provider pay nothing – spans degrade to no-ops.
package tracing
