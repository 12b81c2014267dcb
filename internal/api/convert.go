package api

import (
	"net/url"
	"strconv"
	"strings"

	"capbrowse/internal/browse"
	"capbrowse/internal/record"
)

// FromNormalized converts a normalized record into its API representation.
func FromNormalized(n *record.Normalized) RecordItem {
	if n == nil {
		return RecordItem{}
	}
	return RecordItem{
		ID:              n.ID(),
		AudioURL:        n.AudioURL,
		FinalCaption:    n.Text(record.KeyFinalCaption),
		ASR:             n.Text(record.KeyASR),
		FinalCaptionASR: n.Text(record.KeyFinalCaptionASR),
		JSON:            n.JSON(),
	}
}

// FromNormalizedSlice converts a page of records, never returning nil.
func FromNormalizedSlice(records []*record.Normalized) []RecordItem {
	out := make([]RecordItem, 0, len(records))
	for _, n := range records {
		out = append(out, FromNormalized(n))
	}
	return out
}

// FromView converts an applied browse view into a list response.
func FromView(view browse.View) RecordListResponse {
	return RecordListResponse{
		Items:    FromNormalizedSlice(view.Page.Items),
		Total:    view.Total,
		Matched:  view.Matched,
		Page:     view.Page.Page,
		Pages:    view.Page.Pages,
		PageSize: view.Page.PageSize,
		Query:    view.State.Query,
		Field:    string(view.State.Field),
	}
}

// ParseState reads q, field, page and page_size from values on top of base.
// An unknown field selects all; non-numeric or non-positive numbers keep the
// base values.
func ParseState(values url.Values, base browse.State) browse.State {
	state := base
	if values.Has("q") {
		state = state.WithQuery(values.Get("q"))
	}
	if values.Has("field") {
		field, _ := browse.ParseField(values.Get("field"))
		state = state.WithField(field)
	}
	if size, ok := positiveInt(values.Get("page_size")); ok {
		state = state.WithPageSize(size)
	}
	if page, ok := positiveInt(values.Get("page")); ok {
		state = state.GoTo(page)
	}
	return state
}

// Truthy reports whether a query flag such as expand=1 is set.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func positiveInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
