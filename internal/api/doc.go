// Package api defines wire-format types and converters for the page server's
// JSON endpoints and the CLI's --json output. It translates normalized
// records and browse views into transport-friendly DTOs so consumers never
// depend on internal types.
//
// # Key Types
//
// RecordItem: one normalized record with its resolved audio URL and the
// serialized JSON used for the raw view.
//
// RecordListResponse: a page of RecordItems plus the clamped query state and
// the matched/total counts.
//
// # Converters
//
// FromNormalized: record.Normalized -> RecordItem.
//
// FromView: browse.View -> RecordListResponse.
//
// ParseState: URL query values -> browse.State, falling back to defaults for
// anything that does not parse.
//
// # Design Notes
//
// DTOs use snake_case JSON tags matching the sample file's own keys. The
// list response always carries an items array, never null.
package api
