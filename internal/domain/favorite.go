package domain

import "time"

// FavoriteEntry is a favorited episode. Display fields are denormalized at
// favorite time so the entry survives later catalog changes.
type FavoriteEntry struct {
	Ref          EpisodeRef `json:"ref"`
	EpisodeTitle string     `json:"episodeTitle"`
	ShowTitle    string     `json:"showTitle"`
	SeasonTitle  string     `json:"seasonTitle"`
	Description  string     `json:"description"`
	DateAdded    time.Time  `json:"dateAdded"`
}

// FavoriteSort selects the render-time ordering of the favorites list.
// The set itself is unordered at rest.
type FavoriteSort string

const (
	FavoriteSortTitleAsc   FavoriteSort = "title-asc"
	FavoriteSortTitleDesc  FavoriteSort = "title-desc"
	FavoriteSortDateNewest FavoriteSort = "date-newest"
	FavoriteSortDateOldest FavoriteSort = "date-oldest"
)

// FavoriteSeasonGroup collects a show's favorites for one season,
// preserving the sort order chosen at render time.
type FavoriteSeasonGroup struct {
	SeasonTitle string
	Entries     []FavoriteEntry
}

// FavoriteShowGroup collects favorites under one show title.
type FavoriteShowGroup struct {
	ShowTitle string
	Seasons   []FavoriteSeasonGroup
}
