package browse

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortNone      SortOption = ""           // preserve catalog order
	SortLatest    SortOption = "latest"     // by update date, newest first
	SortOldest    SortOption = "oldest"     // by update date, oldest first
	SortTitleAsc  SortOption = "title-asc"  // title A-Z
	SortTitleDesc SortOption = "title-desc" // title Z-A
)

// Label returns display text for the sort option.
func (s SortOption) Label() string {
	switch s {
	case SortLatest:
		return "Latest"
	case SortOldest:
		return "Oldest"
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortTitleDesc:
		return "Title (Z-A)"
	default:
		return "Default"
	}
}

// SortOptions lists the selectable orderings in menu order.
var SortOptions = []SortOption{SortNone, SortLatest, SortOldest, SortTitleAsc, SortTitleDesc}

// Criteria are the session-scoped filter and sort inputs. A zero value
// passes every show through in catalog order.
type Criteria struct {
	SearchTerm string     // case-insensitive substring match on title
	GenreID    int        // 0 = no genre filter
	Sort       SortOption // applied after filtering, stable
}
