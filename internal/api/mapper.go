package api

import (
	"github.com/castwave/castwave/internal/domain"
)

// updatedLayout is the display form of a show's update date, e.g. "12 March 2024".
const updatedLayout = "2 January 2006"

// mapShow enriches a raw catalog record: genre ids are resolved against the
// static table (unknown ids keep a placeholder, the show is never dropped)
// and the update timestamp is formatted for display.
func mapShow(rec showRecord) *domain.Show {
	genres := make([]domain.Genre, 0, len(rec.Genres))
	for _, id := range rec.Genres {
		genres = append(genres, domain.ResolveGenre(id))
	}

	return &domain.Show{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Image:       rec.Image,
		Genres:      genres,
		Updated:     rec.Updated.Time,
		UpdatedText: rec.Updated.Format(updatedLayout),
		SeasonCount: rec.Seasons,
	}
}

// mapSeasons converts a raw detail response into domain seasons.
func mapSeasons(detail showDetail) []domain.Season {
	seasons := make([]domain.Season, 0, len(detail.Seasons))
	for _, sr := range detail.Seasons {
		episodes := make([]domain.Episode, 0, len(sr.Episodes))
		for _, er := range sr.Episodes {
			episodes = append(episodes, domain.Episode{
				Number:      er.Episode,
				Title:       er.Title,
				Description: er.Description,
				AudioURL:    er.File,
			})
		}
		seasons = append(seasons, domain.Season{
			Number:   sr.Season,
			Title:    sr.Title,
			Image:    sr.Image,
			Episodes: episodes,
		})
	}
	return seasons
}
