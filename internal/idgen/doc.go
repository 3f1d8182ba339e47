// Package idgen wraps the UUID generator that assigns run identifiers so
// that it can be stubbed in tests. It lives under `internal` because callers
// should not rely on its exact behaviour or API – they should treat run
// identifiers as opaque strings.
package idgen
