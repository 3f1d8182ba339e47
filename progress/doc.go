// Package progress provides a lightweight tracker that keeps aggregated
// symbol counters (read, accepted, transitions taken) for a single machine
// run. The tracker instance lives in the run context – every component that
// receives the context can atomically update the counters via the Delta
// helper without requiring a global registry.
package progress
