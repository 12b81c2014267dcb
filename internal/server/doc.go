// Package server runs the local page server for `capbrowse serve`.
//
// The server renders the browse document at /, exposes the same working set
// as JSON under /api/records, serves the configured audio directory under
// /audio/ and publishes Prometheus metrics at /metrics. The loaded catalog
// is immutable and shared read-only across requests. A failed load keeps the
// server running: pages show the error above an empty list.
package server
