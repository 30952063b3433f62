package browse

import (
	"testing"
	"time"

	"github.com/castwave/castwave/internal/domain"
)

func show(id, title string, genres []int, updated string) *domain.Show {
	t, _ := time.Parse("2006-01-02", updated)
	gs := make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		gs = append(gs, domain.ResolveGenre(g))
	}
	return &domain.Show{ID: id, Title: title, Genres: gs, Updated: t}
}

func testCatalog() []*domain.Show {
	return []*domain.Show{
		show("1", "The Morning Brief", []int{8}, "2024-03-01"),
		show("2", "Deep Dive History", []int{3}, "2024-01-15"),
		show("3", "Good Morning History", []int{3, 4}, "2023-06-10"),
		show("4", "Laugh Track", []int{4}, "2024-02-20"),
	}
}

func ids(shows []*domain.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeriveSearch(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term passes all", "", []string{"1", "2", "3", "4"}},
		{"substring match", "morning", []string{"1", "3"}},
		{"case insensitive", "MORNING", []string{"1", "3"}},
		{"mid-title substring", "history", []string{"2", "3"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Derive(testCatalog(), Criteria{SearchTerm: tt.term})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Derive(search=%q) = %v, want %v", tt.term, ids(got), tt.want)
			}
		})
	}
}

func TestDeriveGenreFilter(t *testing.T) {
	tests := []struct {
		name    string
		genreID int
		want    []string
	}{
		{"zero passes all", 0, []string{"1", "2", "3", "4"}},
		{"history", 3, []string{"2", "3"}},
		{"comedy", 4, []string{"3", "4"}},
		{"unmatched genre", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Derive(testCatalog(), Criteria{GenreID: tt.genreID})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Derive(genre=%d) = %v, want %v", tt.genreID, ids(got), tt.want)
			}
		})
	}
}

func TestDeriveSearchAndGenreCompose(t *testing.T) {
	got, _ := Derive(testCatalog(), Criteria{SearchTerm: "morning", GenreID: 3})
	if !equalIDs(ids(got), []string{"3"}) {
		t.Errorf("composed filter = %v, want [3]", ids(got))
	}
}

func TestDeriveSort(t *testing.T) {
	tests := []struct {
		name string
		sort SortOption
		want []string
	}{
		{"none keeps catalog order", SortNone, []string{"1", "2", "3", "4"}},
		{"latest first", SortLatest, []string{"1", "4", "2", "3"}},
		{"oldest first", SortOldest, []string{"3", "2", "4", "1"}},
		{"title ascending", SortTitleAsc, []string{"2", "3", "4", "1"}},
		{"title descending", SortTitleDesc, []string{"1", "4", "3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Derive(testCatalog(), Criteria{Sort: tt.sort})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Derive(sort=%q) = %v, want %v", tt.sort, ids(got), tt.want)
			}
		})
	}
}

// Sorting is a permutation: no show is added, dropped, or duplicated.
func TestDeriveIsPermutation(t *testing.T) {
	catalog := testCatalog()
	for _, opt := range SortOptions {
		got, _ := Derive(catalog, Criteria{Sort: opt})
		if len(got) != len(catalog) {
			t.Fatalf("sort %q changed length: got %d, want %d", opt, len(got), len(catalog))
		}
		seen := map[string]bool{}
		for _, s := range got {
			if seen[s.ID] {
				t.Fatalf("sort %q duplicated show %s", opt, s.ID)
			}
			seen[s.ID] = true
		}
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	before := ids(catalog)

	Derive(catalog, Criteria{Sort: SortTitleDesc})

	if !equalIDs(ids(catalog), before) {
		t.Errorf("input catalog reordered: %v, want %v", ids(catalog), before)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	c := Criteria{SearchTerm: "o", GenreID: 3, Sort: SortTitleAsc}
	first, _ := Derive(testCatalog(), c)
	second, _ := Derive(testCatalog(), c)
	if !equalIDs(ids(first), ids(second)) {
		t.Errorf("repeated derivation differs: %v vs %v", ids(first), ids(second))
	}
}

func TestDeriveEmptyFlag(t *testing.T) {
	tests := []struct {
		name    string
		catalog []*domain.Show
		c       Criteria
		want    bool
	}{
		{"empty catalog is not a filter miss", nil, Criteria{SearchTerm: "x"}, false},
		{"filter produced no results", testCatalog(), Criteria{SearchTerm: "zebra"}, true},
		{"results present", testCatalog(), Criteria{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isEmpty := Derive(tt.catalog, tt.c)
			if isEmpty != tt.want {
				t.Errorf("isEmpty = %v, want %v", isEmpty, tt.want)
			}
		})
	}
}
