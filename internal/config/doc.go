// Package config loads, normalizes, and validates capbrowse configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CAPBROWSE_SOURCE. The Config type centralizes the data source, audio base,
// browse defaults and page server settings so every command resolves them in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// a normalized audio base, a deduplicated field list, and clear validation
// errors.
package config
