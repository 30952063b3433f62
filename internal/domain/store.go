package domain

import "context"

// Store is the single persistence contract for durable per-device state.
// Every value is serialized wholesale under its own key; absent or
// malformed values fall back to the documented default rather than
// surfacing an error. No component reads raw storage directly.
type Store interface {
	// === Favorites (key "favorites", default empty) ===
	GetFavorites() []FavoriteEntry
	SaveFavorites(entries []FavoriteEntry) error

	// === Playback session (keys "isPlaying", "currentEpisode", "duration") ===
	GetPlaybackState() (PlaybackState, bool)
	SavePlaybackState(state PlaybackState) error

	// === Per-episode progress (key "progress_<show>_<season>_<episode>", default 0) ===
	GetProgress(ref EpisodeRef) float64
	SaveProgress(ref EpisodeRef, seconds float64) error

	// === UI preferences ===
	GetDarkMode(defaultValue bool) bool
	SaveDarkMode(on bool) error

	GetCurrentPage() (int, bool)
	SaveCurrentPage(page int) error

	Close() error
}

// CatalogClient provides network access to the remote show catalog.
type CatalogClient interface {
	// FetchCatalog returns the full show list, enriched with resolved
	// genres and formatted update dates.
	FetchCatalog(ctx context.Context) ([]*Show, error)

	// FetchShowDetail returns the season/episode tree for one show.
	FetchShowDetail(ctx context.Context, showID string) ([]Season, error)
}
