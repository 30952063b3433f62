package browse

import "fmt"

// DefaultPageSize is the number of shows per listing page.
const DefaultPageSize = 8

// PageCount returns ceil(total/size). Zero for an empty list.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage bounds a 1-based page number to [1, pageCount].
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if pageCount >= 1 && page > pageCount {
		return pageCount
	}
	return page
}

// Page returns the 1-based page slice of list. Out-of-range pages yield an
// empty slice; callers keep the invariant that a non-empty list always
// shows a non-empty page by normalizing the page number first.
func Page[T any](list []T, size, page int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(list) {
		return nil
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// Paginator tracks the 1-based current page over a derived listing.
type Paginator struct {
	Size    int
	Current int
}

// NewPaginator starts at page 1 with the given page size.
func NewPaginator(size int) Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Paginator{Size: size, Current: 1}
}

// Normalize re-bounds the current page against a (possibly re-filtered)
// list length. When the list shrinks below the current page, the page
// resets to 1 so a non-empty list never displays an empty slice.
func (p *Paginator) Normalize(total int) {
	count := PageCount(total, p.Size)
	if p.Current > count {
		p.Current = 1
		return
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

// GoTo navigates to a page, clamped to the valid range for total items.
func (p *Paginator) GoTo(page, total int) {
	count := PageCount(total, p.Size)
	if count < 1 {
		p.Current = 1
		return
	}
	p.Current = ClampPage(page, count)
}

// Next and Prev move one page, clamped at the edges.
func (p *Paginator) Next(total int) { p.GoTo(p.Current+1, total) }
func (p *Paginator) Prev(total int) { p.GoTo(p.Current-1, total) }

// Summary returns the "Showing X-Y of Z shows" caption, empty for an empty
// list. Controls are suppressed entirely when HasMultiplePages is false.
func (p Paginator) Summary(total int) string {
	if total <= 0 {
		return ""
	}
	first := (p.Current-1)*p.Size + 1
	last := p.Current * p.Size
	if last > total {
		last = total
	}
	return fmt.Sprintf("Showing %d-%d of %d shows", first, last, total)
}

// HasMultiplePages reports whether pagination controls should render at all.
func (p Paginator) HasMultiplePages(total int) bool {
	return PageCount(total, p.Size) > 1
}
