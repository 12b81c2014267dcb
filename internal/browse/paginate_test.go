package browse_test

import (
	"testing"

	"capbrowse/internal/browse"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateEmpty(t *testing.T) {
	for _, requested := range []int{-3, 0, 1, 7} {
		p := browse.Paginate([]int{}, requested, 20)
		if len(p.Items) != 0 || p.Total != 0 || p.Pages != 1 || p.Page != 1 {
			t.Fatalf("Paginate(empty, %d) = %+v", requested, p)
		}
		if p.Items == nil {
			t.Fatal("expected non-nil empty slice")
		}
	}
}

func TestPaginateLastPage(t *testing.T) {
	p := browse.Paginate(seq(45), 3, 20)
	if p.Pages != 3 || p.Page != 3 || p.Total != 45 {
		t.Fatalf("unexpected page metadata: %+v", p)
	}
	if len(p.Items) != 5 || p.Items[0] != 40 || p.Items[4] != 44 {
		t.Fatalf("unexpected items: %v", p.Items)
	}
}

func TestPaginateClamps(t *testing.T) {
	tests := []struct {
		requested int
		wantPage  int
		wantFirst int
	}{
		{99, 3, 40},
		{0, 1, 0},
		{-5, 1, 0},
		{2, 2, 20},
	}
	for _, tt := range tests {
		p := browse.Paginate(seq(45), tt.requested, 20)
		if p.Page != tt.wantPage {
			t.Fatalf("requested %d: got page %d want %d", tt.requested, p.Page, tt.wantPage)
		}
		if p.Items[0] != tt.wantFirst {
			t.Fatalf("requested %d: got first item %d want %d", tt.requested, p.Items[0], tt.wantFirst)
		}
		if p.Start() != tt.wantFirst {
			t.Fatalf("requested %d: got start %d want %d", tt.requested, p.Start(), tt.wantFirst)
		}
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	p := browse.Paginate(seq(40), 2, 20)
	if p.Pages != 2 || len(p.Items) != 20 || p.HasNext() || !p.HasPrev() {
		t.Fatalf("unexpected page: %+v", p)
	}
}

func TestPaginateCoercesPageSize(t *testing.T) {
	p := browse.Paginate(seq(45), 1, 0)
	if p.PageSize != browse.DefaultPageSize || len(p.Items) != browse.DefaultPageSize {
		t.Fatalf("expected default page size, got %+v", p)
	}
}

func TestPaginateSliceDoesNotAliasTail(t *testing.T) {
	items := seq(45)
	p := browse.Paginate(items, 1, 20)
	_ = append(p.Items, -1)
	if items[20] != 20 {
		t.Fatalf("appending to a page overwrote the source: %d", items[20])
	}
}
