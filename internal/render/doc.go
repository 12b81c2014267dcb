// Package render turns a page of normalized records into HTML.
//
// Renderers accept plain data only (a PageView or a single record) and never
// filter or paginate. Every record-derived string passes through
// textutil.Escape before it is written, which keeps escaping in one place.
package render
