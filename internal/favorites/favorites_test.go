package favorites

import (
	"testing"
	"time"

	"github.com/castwave/castwave/internal/domain"
	"github.com/castwave/castwave/internal/log"
	"github.com/castwave/castwave/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	persistence, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return NewStore(persistence, log.NullLogger())
}

func ref(showID string, season, episode int) domain.EpisodeRef {
	return domain.EpisodeRef{ShowID: showID, Season: season, Episode: episode}
}

func TestToggleIsSelfInverse(t *testing.T) {
	s := newTestStore(t)
	r := ref("10716", 1, 3)
	ep := domain.Episode{Number: 3, Title: "The Confrontation"}

	if got := s.Toggle(r, ep, "Something Was Wrong", "Season 1"); !got {
		t.Fatal("first toggle should favorite")
	}
	if !s.IsFavorited(r) {
		t.Fatal("episode should be favorited after toggle on")
	}
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}

	if got := s.Toggle(r, ep, "Something Was Wrong", "Season 1"); got {
		t.Fatal("second toggle should unfavorite")
	}
	if s.IsFavorited(r) {
		t.Fatal("episode should not be favorited after toggle off")
	}
	if s.Count() != 0 {
		t.Fatalf("Count = %d, want 0", s.Count())
	}
}

func TestIsFavoritedMatchesFullTriple(t *testing.T) {
	s := newTestStore(t)
	s.Toggle(ref("10716", 1, 3), domain.Episode{Number: 3, Title: "Ep"}, "Show", "Season 1")

	tests := []struct {
		name string
		ref  domain.EpisodeRef
		want bool
	}{
		{"exact triple", ref("10716", 1, 3), true},
		{"different episode", ref("10716", 1, 4), false},
		{"different season", ref("10716", 2, 3), false},
		{"different show", ref("10717", 1, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsFavorited(tt.ref); got != tt.want {
				t.Errorf("IsFavorited(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestListSorts(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	// Added in this order: Bravo, Alpha, Charlie
	s.Toggle(ref("1", 1, 1), domain.Episode{Title: "Bravo"}, "Show One", "Season 1")
	s.Toggle(ref("1", 1, 2), domain.Episode{Title: "Alpha"}, "Show One", "Season 1")
	s.Toggle(ref("2", 1, 1), domain.Episode{Title: "Charlie"}, "Show Two", "Season 1")

	tests := []struct {
		sort domain.FavoriteSort
		want []string
	}{
		{domain.FavoriteSortTitleAsc, []string{"Alpha", "Bravo", "Charlie"}},
		{domain.FavoriteSortTitleDesc, []string{"Charlie", "Bravo", "Alpha"}},
		{domain.FavoriteSortDateNewest, []string{"Charlie", "Alpha", "Bravo"}},
		{domain.FavoriteSortDateOldest, []string{"Bravo", "Alpha", "Charlie"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := s.List(tt.sort)
			if len(got) != len(tt.want) {
				t.Fatalf("List returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.EpisodeTitle != tt.want[i] {
					t.Errorf("List[%d] = %q, want %q", i, e.EpisodeTitle, tt.want[i])
				}
			}
		})
	}
}

func TestGroupedNestsByShowThenSeason(t *testing.T) {
	s := newTestStore(t)
	s.Toggle(ref("1", 1, 1), domain.Episode{Title: "A"}, "Show One", "Season 1")
	s.Toggle(ref("1", 2, 1), domain.Episode{Title: "B"}, "Show One", "Season 2")
	s.Toggle(ref("2", 1, 1), domain.Episode{Title: "C"}, "Show Two", "Season 1")
	s.Toggle(ref("1", 1, 2), domain.Episode{Title: "D"}, "Show One", "Season 1")

	groups := s.Grouped(domain.FavoriteSortTitleAsc)
	if len(groups) != 2 {
		t.Fatalf("got %d show groups, want 2", len(groups))
	}

	one := groups[0]
	if one.ShowTitle != "Show One" {
		t.Fatalf("first group = %q, want Show One", one.ShowTitle)
	}
	if len(one.Seasons) != 2 {
		t.Fatalf("Show One has %d season groups, want 2", len(one.Seasons))
	}
	if len(one.Seasons[0].Entries) != 2 {
		t.Errorf("Season 1 of Show One has %d entries, want 2", len(one.Seasons[0].Entries))
	}

	two := groups[1]
	if two.ShowTitle != "Show Two" || len(two.Seasons) != 1 {
		t.Errorf("unexpected second group: %+v", two)
	}
}

func TestRehydratesFromPersistence(t *testing.T) {
	persistence, err := store.New("")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	first := NewStore(persistence, log.NullLogger())
	first.Toggle(ref("1", 1, 1), domain.Episode{Title: "Kept"}, "Show", "Season 1")

	second := NewStore(persistence, log.NullLogger())
	if !second.IsFavorited(ref("1", 1, 1)) {
		t.Error("fresh store did not rehydrate the favorite set")
	}
}
