package browse

import (
	"strings"

	"capbrowse/internal/record"
)

// State is the user-controlled query state. Transitions return new values;
// nothing mutates a State in place.
type State struct {
	Query    string
	Field    Field
	Page     int
	PageSize int
}

// NewState returns the startup state: empty query, all fields, first page.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{Field: FieldAll, Page: 1, PageSize: pageSize}
}

// WithQuery replaces the query text and returns to the first page.
func (s State) WithQuery(query string) State {
	s.Query = query
	s.Page = 1
	return s
}

// WithField changes the searched field and returns to the first page.
func (s State) WithField(field Field) State {
	s.Field = field
	s.Page = 1
	return s
}

// WithPageSize changes the page size and returns to the first page.
func (s State) WithPageSize(size int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = 1
	return s
}

// Next advances one page. Apply clamps it if it overshoots.
func (s State) Next() State {
	s.Page++
	return s
}

// Prev steps back one page, never below the first.
func (s State) Prev() State {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// GoTo requests page n; Apply clamps it into range.
func (s State) GoTo(n int) State {
	s.Page = n
	return s
}

// Reset clears the query and field selection, keeping the page size.
func (s State) Reset() State {
	return NewState(s.PageSize)
}

// Active reports whether the state filters anything.
func (s State) Active() bool {
	return strings.TrimSpace(s.Query) != ""
}

// View is the outcome of applying a State to the full record collection.
type View struct {
	// State carries the clamped page; callers must keep it instead of the
	// state they passed in.
	State   State
	Page    Page[*record.Normalized]
	Matched int
	Total   int
}

// Apply filters the full collection with s, paginates the working set and
// returns the page along with the clamped state.
func Apply(all []*record.Normalized, s State) View {
	if s.Field == "" {
		s.Field = FieldAll
	}
	working := Filter(all, s.Query, s.Field)
	page := Paginate(working, s.Page, s.PageSize)
	s.Page = page.Page
	s.PageSize = page.PageSize
	return View{
		State:   s,
		Page:    page,
		Matched: len(working),
		Total:   len(all),
	}
}
