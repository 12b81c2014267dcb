// Package browse implements the query side of the sample browser: field
// projection, the search predicate, pagination, and the reducer-style query
// state that drives them.
//
// Every function here is pure over its inputs. Apply always filters the full
// normalized collection, never a previous working set, so switching fields or
// queries cannot compound filters. The Debouncer is the only stateful helper
// and models "the last call within the window wins".
package browse
