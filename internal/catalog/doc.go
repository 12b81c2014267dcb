// Package catalog holds the loaded, normalized sample collection.
//
// A Catalog is built once per process from the configured source. It is
// immutable afterwards and safe to share across goroutines. When the load
// fails the catalog is empty and remembers the error so callers can decide
// whether to abort (CLI) or keep serving and show it (page server).
package catalog
