package domain

import (
	"errors"
	"fmt"
)

// ErrShowNotFound indicates the requested show does not exist in the catalog.
var ErrShowNotFound = errors.New("show not found")

// CatalogLoadError indicates the catalog fetch failed. Previously loaded
// data stays visible; the user retries manually.
type CatalogLoadError struct {
	Err error
}

func (e *CatalogLoadError) Error() string {
	return "failed to load podcasts, please try again later"
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// DetailLoadError indicates a per-show season/episode fetch failed. It is
// scoped to the open detail view and does not affect the listing.
type DetailLoadError struct {
	ShowID string
	Err    error
}

func (e *DetailLoadError) Error() string {
	return fmt.Sprintf("failed to load episodes for show %s", e.ShowID)
}

func (e *DetailLoadError) Unwrap() error { return e.Err }
