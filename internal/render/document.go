package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"capbrowse/internal/record"
	"capbrowse/internal/textutil"
)

// FieldOption is one entry of the field selector.
type FieldOption struct {
	Value string
	Label string
}

// PageView is everything the document needs, already filtered and paginated.
type PageView struct {
	Title          string
	Records        []*record.Normalized
	Matched        int
	Total          int
	Page           int
	Pages          int
	PageSize       int
	Query          string
	Field          string
	Fields         []FieldOption
	PageSizes      []int
	AutoExpandJSON bool
	DebounceMillis int
	// Error is the load failure shown instead of records.
	Error string
}

// Meta summarizes the working set and position.
func Meta(v PageView) string {
	pages := max(v.Pages, 1)
	page := min(max(v.Page, 1), pages)
	return fmt.Sprintf("%d / %d records · page %d/%d", v.Matched, v.Total, page, pages)
}

// Document renders a complete HTML page for v.
func Document(v PageView) string {
	title := v.Title
	if title == "" {
		title = "Sample browser"
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString("<title>")
	b.WriteString(textutil.Escape(title))
	b.WriteString("</title><style>")
	b.WriteString(stylesheet)
	b.WriteString("</style></head><body>")

	b.WriteString(`<header class="top"><h1>`)
	b.WriteString(textutil.Escape(title))
	b.WriteString(`</h1><div id="metaTop" class="meta">`)
	b.WriteString(textutil.Escape(Meta(v)))
	b.WriteString(`</div></header>`)

	writeControls(&b, v)

	if v.Error != "" {
		b.WriteString(`<div class="error" role="alert">`)
		b.WriteString(textutil.Escape(v.Error))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<main id="list">`)
	if len(v.Records) == 0 && v.Error == "" {
		b.WriteString(`<div class="empty muted">No matching records</div>`)
	}
	opts := CardOptions{AutoExpandJSON: v.AutoExpandJSON}
	for _, n := range v.Records {
		b.WriteString(Card(n, opts))
	}
	b.WriteString(`</main>`)

	writePager(&b, v)

	b.WriteString(`<script>const DEBOUNCE_MS = `)
	b.WriteString(strconv.Itoa(max(v.DebounceMillis, 0)))
	b.WriteString(";\n")
	b.WriteString(script)
	b.WriteString("</script></body></html>\n")
	return b.String()
}

// clearField is the selector the Clear link resets to, whatever the
// configured default field is.
const clearField = "all"

func writeControls(b *strings.Builder, v PageView) {
	b.WriteString(`<form id="controls" class="controls" method="get" action="/">`)
	b.WriteString(`<input id="q" name="q" type="search" placeholder="Search…" autocomplete="off" value="`)
	b.WriteString(textutil.Escape(v.Query))
	b.WriteString(`">`)

	b.WriteString(`<select id="field" name="field">`)
	for _, opt := range v.Fields {
		writeOption(b, opt.Value, opt.Label, opt.Value == v.Field)
	}
	b.WriteString(`</select>`)

	b.WriteString(`<select id="pageSize" name="page_size">`)
	for _, size := range v.PageSizes {
		value := strconv.Itoa(size)
		writeOption(b, value, value+" / page", size == v.PageSize)
	}
	b.WriteString(`</select>`)

	b.WriteString(`<label class="toggle"><input id="autoExpandJson" name="expand" type="checkbox" value="1"`)
	b.WriteString(textutil.Ternary(v.AutoExpandJSON, " checked", ""))
	b.WriteString(`> Expand JSON</label>`)
	b.WriteString(`<button class="btn primary" type="submit">Search</button>`)
	b.WriteString(`<a id="clear" class="btn ghost" href="`)
	b.WriteString(textutil.Escape(pageLink(PageView{Field: clearField, PageSize: v.PageSize, AutoExpandJSON: v.AutoExpandJSON}, 1)))
	b.WriteString(`">Clear</a></form>`)
}

func writeOption(b *strings.Builder, value, label string, selected bool) {
	b.WriteString(`<option value="`)
	b.WriteString(textutil.Escape(value))
	b.WriteString(`"`)
	b.WriteString(textutil.Ternary(selected, " selected", ""))
	b.WriteString(`>`)
	b.WriteString(textutil.Escape(label))
	b.WriteString(`</option>`)
}

func writePager(b *strings.Builder, v PageView) {
	pages := max(v.Pages, 1)
	page := min(max(v.Page, 1), pages)

	b.WriteString(`<nav class="pager">`)
	if page > 1 {
		b.WriteString(`<a id="prev" class="btn" href="`)
		b.WriteString(textutil.Escape(pageLink(v, page-1)))
		b.WriteString(`">Prev</a>`)
	} else {
		b.WriteString(`<span id="prev" class="btn disabled">Prev</span>`)
	}
	b.WriteString(`<span id="pageInfo">`)
	b.WriteString(fmt.Sprintf("%d / %d", page, pages))
	b.WriteString(`</span>`)
	if page < pages {
		b.WriteString(`<a id="next" class="btn" href="`)
		b.WriteString(textutil.Escape(pageLink(v, page+1)))
		b.WriteString(`">Next</a>`)
	} else {
		b.WriteString(`<span id="next" class="btn disabled">Next</span>`)
	}
	b.WriteString(`<div id="meta" class="meta">`)
	b.WriteString(textutil.Escape(Meta(v)))
	b.WriteString(`</div></nav>`)
}

func pageLink(v PageView, page int) string {
	values := url.Values{}
	if v.Query != "" {
		values.Set("q", v.Query)
	}
	if v.Field != "" {
		values.Set("field", v.Field)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if v.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(v.PageSize))
	}
	if v.AutoExpandJSON {
		values.Set("expand", "1")
	}
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}
