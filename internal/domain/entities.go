package domain

import (
	"fmt"
	"time"
)

// Genre is static reference data; it is never fetched from the API.
type Genre struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Show represents a podcast series as published in the catalog.
// Genres are resolved and the update date formatted at ingestion time;
// the record is immutable until the next catalog fetch replaces it.
type Show struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`       // Cover art URL
	Genres      []Genre   `json:"genres"`      // Resolved; unknown ids keep a placeholder entry
	Updated     time.Time `json:"updated"`     // Parsed update timestamp (used for sorting)
	UpdatedText string    `json:"updatedText"` // Display form, e.g. "12 March 2024"
	SeasonCount int       `json:"seasons"`
}

// HasGenre reports whether the show carries the given genre id.
func (s *Show) HasGenre(id int) bool {
	for _, g := range s.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// SeasonsLabel returns display text for the season count.
func (s *Show) SeasonsLabel() string {
	if s.SeasonCount == 1 {
		return "1 Season"
	}
	return fmt.Sprintf("%d Seasons", s.SeasonCount)
}

// GenresLabel returns the resolved genre titles joined for display.
func (s *Show) GenresLabel() string {
	if len(s.Genres) == 0 {
		return "No genres available"
	}
	out := ""
	for i, g := range s.Genres {
		if i > 0 {
			out += ", "
		}
		out += g.Title
	}
	return out
}

// Season is one season of a show. Seasons are fetched lazily when a show's
// detail view opens and are not cached across sessions.
type Season struct {
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	Episodes []Episode `json:"episodes"`
}

// Episode is a single playable audio item within a season.
type Episode struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AudioURL    string `json:"audioUrl"`
}

// EpisodeRef is the stable identity key for an episode: the
// (show, season, episode) triple. Two refs are equal iff all three
// components match; every favorites and playback lookup uses this key.
type EpisodeRef struct {
	ShowID  string `json:"showId"`
	Season  int    `json:"seasonNumber"`
	Episode int    `json:"episodeNumber"`
}

// IsZero reports whether the ref is unset.
func (r EpisodeRef) IsZero() bool {
	return r == EpisodeRef{}
}

// Key returns the storage key fragment for this ref,
// e.g. "42_1_3" for show 42, season 1, episode 3.
func (r EpisodeRef) Key() string {
	return fmt.Sprintf("%s_%d_%d", r.ShowID, r.Season, r.Episode)
}

func (r EpisodeRef) String() string {
	return fmt.Sprintf("%s S%02dE%02d", r.ShowID, r.Season, r.Episode)
}
