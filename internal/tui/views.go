package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sahilm/fuzzy"

	"github.com/castwave/castwave/internal/browse"
	"github.com/castwave/castwave/internal/domain"
	"github.com/castwave/castwave/internal/tui/styles"
)

const heroCount = 4

// View renders the whole screen
func (m Model) View() string {
	if m.confirmQuit {
		return m.confirmQuitView()
	}
	if m.omnibarOpen {
		return m.omnibarView()
	}

	var body string
	switch m.view {
	case ViewDetail:
		body = m.detailView()
	case ViewFavorites:
		body = m.favoritesView()
	default:
		body = m.browseView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.playerBar(),
		m.helpLine(),
	)
}

func (m Model) browseView() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("CASTWAVE") + "  " + m.theme.Subtitle.Render("Podcast Directory") + "\n\n")

	if hero := m.heroLine(); hero != "" {
		b.WriteString(hero + "\n\n")
	}

	b.WriteString(m.filterLine() + "\n\n")

	if m.genreMenuOpen {
		b.WriteString(m.genreMenu())
		return b.String()
	}
	if m.sortMenuOpen {
		b.WriteString(m.sortMenu())
		return b.String()
	}

	// Loading, error, and empty are mutually exclusive and checked in
	// that priority order.
	switch {
	case m.loading:
		b.WriteString(m.theme.Subtitle.Render("Loading podcasts..."))
	case m.loadErr != "":
		b.WriteString(m.theme.Error.Render(m.loadErr) + "\n")
		b.WriteString(m.theme.Dim.Render("press r to retry"))
	case m.noResults:
		b.WriteString(m.theme.Subtitle.Render("No podcasts found matching your criteria."))
	default:
		b.WriteString(m.showList())
		if m.pager.HasMultiplePages(len(m.filtered)) {
			b.WriteString("\n" + m.paginationLine())
		}
	}

	return b.String()
}

// heroLine surfaces the most recently updated shows across the whole
// catalog, independent of the active filter.
func (m Model) heroLine() string {
	shows := m.repo.Shows()
	if len(shows) == 0 {
		return ""
	}

	latest := make([]*domain.Show, len(shows))
	copy(latest, shows)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].Updated.After(latest[j].Updated)
	})
	if len(latest) > heroCount {
		latest = latest[:heroCount]
	}

	titles := make([]string, len(latest))
	for i, s := range latest {
		titles[i] = m.theme.Accent.Render(s.Title)
	}
	return m.theme.Dim.Render("Recently updated: ") + strings.Join(titles, m.theme.Dim.Render(" · "))
}

func (m Model) filterLine() string {
	search := m.searchInput.View()
	if !m.searching && m.searchInput.Value() == "" {
		search = m.theme.Dim.Render("/ search")
	}

	genre := "All Genres"
	if m.criteria.GenreID != 0 {
		genre = domain.ResolveGenre(m.criteria.GenreID).Title
	}

	return fmt.Sprintf("%s   %s %s   %s %s",
		search,
		m.theme.Dim.Render("genre:"), m.theme.Genre.Render(genre),
		m.theme.Dim.Render("sort:"), m.theme.Accent.Render(m.criteria.Sort.Label()),
	)
}

func (m Model) showList() string {
	var b strings.Builder
	page := m.currentPage()

	for i, show := range page {
		title := show.Title
		if i == m.cursor {
			title = m.theme.Selected.Render(title)
		} else {
			title = m.theme.Title.Render(title)
		}

		b.WriteString(fmt.Sprintf("%s\n  %s  %s\n  %s\n",
			title,
			m.theme.Subtitle.Render(show.SeasonsLabel()),
			m.theme.Genre.Render(show.GenresLabel()),
			m.theme.Dim.Render("Updated: "+show.UpdatedText),
		))
	}

	return b.String()
}

func (m Model) paginationLine() string {
	prev := "«"
	next := "»"
	count := len(m.filtered)
	return m.theme.Dim.Render(prev) + " " +
		m.theme.Subtitle.Render(m.pager.Summary(count)) + " " +
		m.theme.Dim.Render(next)
}

func (m Model) genreMenu() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Filter by genre") + "\n\n")

	entries := append([]string{"All Genres"}, genreTitles()...)
	for i, title := range entries {
		if i == m.genreCursor {
			b.WriteString(m.theme.Selected.Render(title) + "\n")
		} else {
			b.WriteString("  " + title + "\n")
		}
	}
	return b.String()
}

func genreTitles() []string {
	titles := make([]string, len(domain.Genres))
	for i, g := range domain.Genres {
		titles[i] = g.Title
	}
	return titles
}

func sortOptionLabels() []string {
	labels := make([]string, len(browse.SortOptions))
	for i, opt := range browse.SortOptions {
		labels[i] = opt.Label()
	}
	return labels
}

func (m Model) sortMenu() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Sort shows") + "\n\n")

	for i, opt := range sortOptionLabels() {
		if i == m.sortCursor {
			b.WriteString(m.theme.Selected.Render(opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	return b.String()
}

func (m Model) detailView() string {
	if m.detailShow == nil {
		return ""
	}
	show := m.detailShow

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(show.Title) + "\n")
	b.WriteString(m.theme.Genre.Render(show.GenresLabel()) + "\n")
	b.WriteString(m.theme.Dim.Render("Last updated: "+show.UpdatedText) + "  " +
		m.theme.Subtitle.Render(show.SeasonsLabel()) + "\n\n")

	wrapped := wordwrap.String(show.Description, m.contentWidth())
	b.WriteString(m.theme.Subtitle.Render(wrapped) + "\n\n")

	switch {
	case m.detailLoading:
		b.WriteString(m.theme.Subtitle.Render("Loading episodes..."))
		return b.String()
	case m.detailErr != "":
		b.WriteString(m.theme.Error.Render(m.detailErr) + "\n")
		b.WriteString(m.theme.Dim.Render("press r to retry, esc to go back"))
		return b.String()
	case len(m.seasons) == 0:
		b.WriteString(m.theme.Subtitle.Render("No seasons available"))
		return b.String()
	}

	b.WriteString(m.seasonTabs() + "\n\n")

	if m.epFiltering || m.epFilterInput.Value() != "" {
		b.WriteString(m.epFilterInput.View() + "\n\n")
	}

	b.WriteString(m.episodeList())
	return b.String()
}

func (m Model) seasonTabs() string {
	tabs := make([]string, len(m.seasons))
	for i, s := range m.seasons {
		label := s.Title
		if label == "" {
			label = fmt.Sprintf("Season %d", s.Number)
		}
		if i == m.seasonIdx {
			tabs[i] = m.theme.Selected.Render(label)
		} else {
			tabs[i] = m.theme.Dim.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) episodeList() string {
	var b strings.Builder
	show := m.detailShow
	season := m.seasons[m.seasonIdx]

	for i, ep := range m.visibleEpisodes() {
		ref := domain.EpisodeRef{ShowID: show.ID, Season: season.Number, Episode: ep.Number}

		marker := "  "
		if m.favorites.IsFavorited(ref) {
			marker = m.theme.Accent.Render(styles.HeartChar) + " "
		}

		progress := ""
		if p := m.persistence.GetProgress(ref); p > 0 {
			progress = m.theme.Dim.Render(fmt.Sprintf(" (resumes at %s)", formatTime(p)))
		}

		line := fmt.Sprintf("%s%2d. %s%s", marker, ep.Number, ep.Title, progress)
		if i == m.episodeIdx {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// visibleEpisodes returns the active season's episodes, narrowed by the
// type-ahead filter when one is set.
func (m Model) visibleEpisodes() []domain.Episode {
	if m.seasonIdx >= len(m.seasons) {
		return nil
	}
	episodes := m.seasons[m.seasonIdx].Episodes

	pattern := m.epFilterInput.Value()
	if pattern == "" {
		return episodes
	}

	matches := fuzzy.FindFrom(pattern, episodeSource(episodes))
	out := make([]domain.Episode, 0, len(matches))
	for _, match := range matches {
		out = append(out, episodes[match.Index])
	}
	return out
}

// episodeSource implements fuzzy.Source over a season's episodes
type episodeSource []domain.Episode

func (e episodeSource) String(i int) string { return e[i].Title }
func (e episodeSource) Len() int            { return len(e) }

func (m Model) favoritesView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Favorites") + "  " +
		m.theme.Dim.Render(fmt.Sprintf("(%d episodes, sorted by %s)", m.favorites.Count(), string(m.favSort))) + "\n\n")

	if len(m.favGroups) == 0 {
		b.WriteString(m.theme.Subtitle.Render("No favorite episodes yet."))
		return b.String()
	}

	for _, group := range m.favGroups {
		b.WriteString(m.theme.Accent.Render(group.ShowTitle) + "\n")
		for _, season := range group.Seasons {
			b.WriteString("  " + m.theme.Subtitle.Render(season.SeasonTitle) + "\n")
			for _, entry := range season.Entries {
				b.WriteString(fmt.Sprintf("    %s %s  %s\n",
					m.theme.Accent.Render(styles.HeartChar),
					entry.EpisodeTitle,
					m.theme.Dim.Render("added "+entry.DateAdded.Format("2 Jan 2006 15:04")),
				))
			}
		}
	}

	return b.String()
}

func (m Model) playerBar() string {
	state := m.session.Snapshot()

	if m.session.State() == domain.SessionIdle {
		return m.theme.PlayerBar.Render(m.theme.Dim.Render("No episode loaded"))
	}

	icon := styles.PausedChar
	if state.IsPlaying {
		icon = styles.PlayingChar
	}

	return m.theme.PlayerBar.Render(fmt.Sprintf("%s %s  %s / %s",
		icon,
		state.EpisodeTitle,
		formatTime(state.CurrentTime),
		formatTime(state.Duration),
	))
}

func (m Model) helpLine() string {
	switch m.view {
	case ViewDetail:
		return m.theme.Help.Render("↑/↓ episode · ←/→ season · enter play · f favorite · / filter · esc back · space play/pause · q quit")
	case ViewFavorites:
		return m.theme.Help.Render("s sort · esc back · space play/pause · q quit")
	default:
		return m.theme.Help.Render("↑/↓ select · p/n page · enter open · / search · g genre · s sort · F favorites · ctrl+k jump · d theme · q quit")
	}
}

func (m Model) confirmQuitView() string {
	box := m.theme.Border.Padding(1, 2).Render(
		m.theme.Title.Render("You have audio playing.") + "\n\n" +
			"Quit anyway? " + m.theme.Dim.Render("(y/n)"),
	)
	return box
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	if m.width > 100 {
		return 100
	}
	return m.width - 2
}

// formatTime renders seconds as m:ss
func formatTime(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
