package tui

import (
	"github.com/castwave/castwave/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the show catalog has been loaded
type CatalogLoadedMsg struct {
	Shows []*domain.Show
}

// CatalogErrMsg signals that the catalog fetch failed
type CatalogErrMsg struct {
	Err *domain.CatalogLoadError
}

// DetailLoadedMsg signals that a show's seasons have been loaded.
// ShowID lets the model discard results for a detail view that has
// since been closed or replaced.
type DetailLoadedMsg struct {
	ShowID  string
	Seasons []domain.Season
}

// DetailErrMsg signals that a show's season fetch failed
type DetailErrMsg struct {
	ShowID string
	Err    *domain.DetailLoadError
}

// TimeUpdateMsg carries a playback position callback from the audio backend
type TimeUpdateMsg struct {
	Seconds float64
}

// DurationChangedMsg carries a stream duration callback from the audio backend
type DurationChangedMsg struct {
	Seconds float64
}
