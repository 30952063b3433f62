package browse

import "testing"

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := PageCount(tt.total, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page full", 1, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"last page partial", 2, []int{9}},
		{"past the end", 3, nil},
		{"page zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(list, 8, tt.page)
			if len(got) != len(tt.want) {
				t.Fatalf("Page(9 items, 8, %d) has %d items, want %d", tt.page, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Page(...)[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The listing invariant: once the current page is normalized against the
// list, a non-empty list never yields an empty page.
func TestNormalizeNeverYieldsEmptyPage(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		total       int
		wantCurrent int
	}{
		{"valid page unchanged", 2, 9, 2},
		{"shrunk list resets to 1", 2, 5, 1},
		{"empty list resets to 1", 3, 0, 1},
		{"below range resets to 1", 0, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginator{Size: 8, Current: tt.current}
			p.Normalize(tt.total)
			if p.Current != tt.wantCurrent {
				t.Fatalf("Normalize(%d) left Current = %d, want %d", tt.total, p.Current, tt.wantCurrent)
			}

			list := make([]int, tt.total)
			page := Page(list, p.Size, p.Current)
			if tt.total > 0 && len(page) == 0 {
				t.Errorf("non-empty list rendered an empty page")
			}
		})
	}
}

func TestNavigationClampsAtEdges(t *testing.T) {
	p := NewPaginator(8)
	total := 20 // 3 pages

	p.Prev(total)
	if p.Current != 1 {
		t.Errorf("Prev at first page moved to %d", p.Current)
	}

	p.Next(total)
	p.Next(total)
	p.Next(total)
	if p.Current != 3 {
		t.Errorf("Next past last page moved to %d, want 3", p.Current)
	}

	p.GoTo(99, total)
	if p.Current != 3 {
		t.Errorf("GoTo(99) = %d, want 3", p.Current)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 9, "Showing 1-8 of 9 shows"},
		{2, 9, "Showing 9-9 of 9 shows"},
		{1, 3, "Showing 1-3 of 3 shows"},
		{1, 0, ""},
	}

	for _, tt := range tests {
		p := Paginator{Size: 8, Current: tt.current}
		if got := p.Summary(tt.total); got != tt.want {
			t.Errorf("Summary(%d) on page %d = %q, want %q", tt.total, tt.current, got, tt.want)
		}
	}
}

func TestHasMultiplePages(t *testing.T) {
	p := NewPaginator(8)
	if p.HasMultiplePages(8) {
		t.Error("8 items in one page should not paginate")
	}
	if !p.HasMultiplePages(9) {
		t.Error("9 items should paginate")
	}
	if p.HasMultiplePages(0) {
		t.Error("empty list should not paginate")
	}
}
