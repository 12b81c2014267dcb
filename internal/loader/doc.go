// Package loader fetches the sample document and decodes it into records.
//
// Sources are either http(s) URLs, fetched once with a cache-busting query
// parameter, or local paths. Failures are reported as one of three distinct
// error types so callers can tell a transport problem (LoadError) from
// malformed JSON (ParseError) and from a document that is not an array of
// objects (SchemaError). There are no retries and no partial results.
package loader
