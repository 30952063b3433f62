package favorites

import (
	"log/slog"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/castwave/castwave/internal/domain"
)

// Store manages the favorited-episode set. The set lives in memory and is
// written wholesale to persistence immediately after every mutation; it is
// rehydrated exactly once at construction, degrading to empty when the
// stored value is absent or corrupt.
type Store struct {
	persistence domain.Store
	logger      *slog.Logger
	now         func() time.Time

	entries []domain.FavoriteEntry
}

// NewStore rehydrates the favorite set from persistence.
func NewStore(persistence domain.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		persistence: persistence,
		logger:      logger,
		now:         time.Now,
		entries:     persistence.GetFavorites(),
	}
	logger.Debug("favorites rehydrated", "count", len(s.entries))
	return s
}

// IsFavorited reports whether an entry exists for the ref. Lookup is by
// the full (show, season, episode) triple.
func (s *Store) IsFavorited(ref domain.EpisodeRef) bool {
	return lo.SomeBy(s.entries, func(e domain.FavoriteEntry) bool {
		return e.Ref == ref
	})
}

// Toggle removes the entry for ref when present, otherwise inserts a new
// entry stamped with the current time and the supplied display titles.
// Returns true when the episode is favorited after the call. At most one
// entry ever exists per ref, so toggling twice restores the prior state.
func (s *Store) Toggle(ref domain.EpisodeRef, episode domain.Episode, showTitle, seasonTitle string) bool {
	if s.IsFavorited(ref) {
		s.entries = lo.Reject(s.entries, func(e domain.FavoriteEntry, _ int) bool {
			return e.Ref == ref
		})
		s.persist()
		s.logger.Info("unfavorited episode", "ref", ref.String())
		return false
	}

	s.entries = append(s.entries, domain.FavoriteEntry{
		Ref:          ref,
		EpisodeTitle: episode.Title,
		ShowTitle:    showTitle,
		SeasonTitle:  seasonTitle,
		Description:  episode.Description,
		DateAdded:    s.now(),
	})
	s.persist()
	s.logger.Info("favorited episode", "ref", ref.String())
	return true
}

// Count returns the number of favorited episodes.
func (s *Store) Count() int {
	return len(s.entries)
}

// List returns the entries ordered by the chosen sort key.
func (s *Store) List(sortBy domain.FavoriteSort) []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, len(s.entries))
	copy(out, s.entries)

	switch sortBy {
	case domain.FavoriteSortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EpisodeTitle > out[j].EpisodeTitle
		})
	case domain.FavoriteSortDateNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded.After(out[j].DateAdded)
		})
	case domain.FavoriteSortDateOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateAdded.Before(out[j].DateAdded)
		})
	default: // title ascending
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EpisodeTitle < out[j].EpisodeTitle
		})
	}
	return out
}

// Grouped returns the sorted entries nested show title -> season title,
// preserving the sort order within each group. Group headers appear in the
// order their first entry appears in the sorted list.
func (s *Store) Grouped(sortBy domain.FavoriteSort) []domain.FavoriteShowGroup {
	sorted := s.List(sortBy)

	var groups []domain.FavoriteShowGroup
	showIndex := map[string]int{}

	for _, entry := range sorted {
		gi, ok := showIndex[entry.ShowTitle]
		if !ok {
			gi = len(groups)
			showIndex[entry.ShowTitle] = gi
			groups = append(groups, domain.FavoriteShowGroup{ShowTitle: entry.ShowTitle})
		}

		seasons := groups[gi].Seasons
		si := -1
		for i := range seasons {
			if seasons[i].SeasonTitle == entry.SeasonTitle {
				si = i
				break
			}
		}
		if si == -1 {
			seasons = append(seasons, domain.FavoriteSeasonGroup{SeasonTitle: entry.SeasonTitle})
			si = len(seasons) - 1
		}
		seasons[si].Entries = append(seasons[si].Entries, entry)
		groups[gi].Seasons = seasons
	}

	return groups
}

func (s *Store) persist() {
	if err := s.persistence.SaveFavorites(s.entries); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
}
