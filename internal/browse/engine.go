package browse

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/castwave/castwave/internal/domain"
)

// titleCollator gives locale-aware, case-insensitive title ordering.
// Derive runs on the UI event loop only; the collator is not shared
// across goroutines.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Derive computes the ordered, filtered listing from the catalog and the
// current criteria. Pure: the input slice is never reordered in place, and
// identical inputs always produce the identical ordering. The returned flag
// is true when filtering (not the catalog itself) produced no results.
func Derive(catalog []*domain.Show, c Criteria) ([]*domain.Show, bool) {
	filtered := lo.Filter(catalog, func(s *domain.Show, _ int) bool {
		return matchesSearch(s, c.SearchTerm) && matchesGenre(s, c.GenreID)
	})

	sortShows(filtered, c.Sort)

	isEmpty := len(filtered) == 0 && len(catalog) > 0
	return filtered, isEmpty
}

func matchesSearch(s *domain.Show, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), strings.ToLower(term))
}

func matchesGenre(s *domain.Show, genreID int) bool {
	if genreID == 0 {
		return true
	}
	return s.HasGenre(genreID)
}

// sortShows orders the filtered slice in place. Sorting is stable so equal
// elements keep their catalog order.
func sortShows(shows []*domain.Show, opt SortOption) {
	switch opt {
	case SortLatest:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated.After(shows[j].Updated)
		})
	case SortOldest:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated.Before(shows[j].Updated)
		})
	case SortTitleAsc:
		sort.SliceStable(shows, func(i, j int) bool {
			return titleCollator.CompareString(shows[i].Title, shows[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(shows, func(i, j int) bool {
			return titleCollator.CompareString(shows[i].Title, shows[j].Title) > 0
		})
	}
}
