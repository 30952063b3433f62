package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/castwave/castwave/internal/domain"
)

// Repository owns the fetched show catalog. One Load per session; Retry
// re-runs a failed Load. A failed fetch never clobbers previously loaded
// data, and a new successful fetch fully replaces it (no merging).
type Repository struct {
	client domain.CatalogClient
	logger *slog.Logger

	mu      sync.RWMutex
	shows   []*domain.Show
	loaded  bool
	lastErr *domain.CatalogLoadError
}

// NewRepository creates a catalog repository backed by the given client.
func NewRepository(client domain.CatalogClient, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		client: client,
		logger: logger,
	}
}

// Load fetches the catalog and publishes the enriched list. On transport
// failure the previous list (if any) stays in place and the typed error is
// both recorded and returned.
func (r *Repository) Load(ctx context.Context) ([]*domain.Show, error) {
	shows, err := r.client.FetchCatalog(ctx)
	if err != nil {
		loadErr := &domain.CatalogLoadError{Err: err}
		r.mu.Lock()
		r.lastErr = loadErr
		r.mu.Unlock()
		r.logger.Error("catalog load failed", "error", err)
		return nil, loadErr
	}

	r.mu.Lock()
	r.shows = shows
	r.loaded = true
	r.lastErr = nil
	r.mu.Unlock()

	r.logger.Info("catalog loaded", "shows", len(shows))
	return shows, nil
}

// Retry re-runs Load after a failure.
func (r *Repository) Retry(ctx context.Context) ([]*domain.Show, error) {
	return r.Load(ctx)
}

// Shows returns the published catalog. Empty until Load succeeds.
func (r *Repository) Shows() []*domain.Show {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shows
}

// Loaded reports whether a catalog fetch has succeeded this session.
func (r *Repository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// LastError returns the recorded load error, nil after a successful Load.
func (r *Repository) LastError() *domain.CatalogLoadError {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Find resolves a show id against the loaded catalog.
func (r *Repository) Find(showID string) (*domain.Show, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shows {
		if s.ID == showID {
			return s, true
		}
	}
	return nil, false
}

// LoadDetail fetches the season/episode tree for one show. Details are not
// cached: each detail open re-fetches. Failures are scoped to the detail
// view via DetailLoadError and never touch the listing.
func (r *Repository) LoadDetail(ctx context.Context, showID string) ([]domain.Season, error) {
	seasons, err := r.client.FetchShowDetail(ctx, showID)
	if err != nil {
		r.logger.Error("show detail load failed", "showID", showID, "error", err)
		return nil, &domain.DetailLoadError{ShowID: showID, Err: err}
	}
	return seasons, nil
}
