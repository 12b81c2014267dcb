// Package logging assembles structured slog loggers and formatting helpers used
// across capbrowse.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so loader and page server code
// can tag log lines with load and request identifiers. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
