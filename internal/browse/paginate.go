package browse

// DefaultPageSize is used whenever a non-positive page size is requested.
const DefaultPageSize = 20

// Page is one slice of an ordered sequence plus the arithmetic that produced it.
type Page[T any] struct {
	Items []T
	Total int
	Pages int
	// Page is the 1-based page actually returned after clamping.
	Page     int
	PageSize int
}

// Start returns the 0-based offset of the first item on the page.
func (p Page[T]) Start() int { return (p.Page - 1) * p.PageSize }

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.Pages }

// Paginate slices items into the requested page. The requested page is
// clamped into [1, pages]; an empty input still reports a single page.
func Paginate[T any](items []T, requestedPage, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	page := min(max(requestedPage, 1), pages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	slice := items[start:end:end]
	if total == 0 {
		slice = []T{}
	}
	return Page[T]{
		Items:    slice,
		Total:    total,
		Pages:    pages,
		Page:     page,
		PageSize: pageSize,
	}
}
