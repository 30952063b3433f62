package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castwave/castwave/internal/catalog"
	"github.com/castwave/castwave/internal/domain"
)

// Command factories for async operations. Fetches are non-cancelable; a
// superseded fetch's message is discarded by the model on arrival.

// LoadCatalogCmd fetches the show catalog
func LoadCatalogCmd(repo *catalog.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		shows, err := repo.Load(ctx)
		if err != nil {
			var loadErr *domain.CatalogLoadError
			if errors.As(err, &loadErr) {
				return CatalogErrMsg{Err: loadErr}
			}
			return CatalogErrMsg{Err: &domain.CatalogLoadError{Err: err}}
		}
		return CatalogLoadedMsg{Shows: shows}
	}
}

// LoadDetailCmd fetches one show's season/episode tree
func LoadDetailCmd(repo *catalog.Repository, showID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		seasons, err := repo.LoadDetail(ctx, showID)
		if err != nil {
			var detailErr *domain.DetailLoadError
			if errors.As(err, &detailErr) {
				return DetailErrMsg{ShowID: showID, Err: detailErr}
			}
			return DetailErrMsg{ShowID: showID, Err: &domain.DetailLoadError{ShowID: showID, Err: err}}
		}
		return DetailLoadedMsg{ShowID: showID, Seasons: seasons}
	}
}
