// Package textutil provides the text primitives shared by the browser views.
//
// The primary use cases are:
//   - Escaping record-derived text before it is embedded into markup
//   - Folding case consistently for query and field comparisons
//   - Truncating long captions for terminal cells
//
// Escape is the single choke point for markup safety: renderers receive raw
// record values and must pass every one of them through it.
package textutil
