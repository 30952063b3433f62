package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/castwave/castwave/internal/browse"
	"github.com/castwave/castwave/internal/catalog"
	"github.com/castwave/castwave/internal/domain"
	"github.com/castwave/castwave/internal/favorites"
	"github.com/castwave/castwave/internal/nav"
	"github.com/castwave/castwave/internal/playback"
	"github.com/castwave/castwave/internal/tui/styles"
)

// ViewState identifies the active top-level view
type ViewState int

const (
	ViewBrowse ViewState = iota
	ViewDetail
	ViewFavorites
)

const seekStep = 15 // seconds per seek key press

// Model is the main Bubble Tea model for the application
type Model struct {
	keys  KeyMap
	theme styles.Theme
	dark  bool

	// Services
	repo        *catalog.Repository
	favorites   *favorites.Store
	session     *playback.Session
	bridge      *nav.Bridge
	persistence domain.Store

	// Listing derivation state
	criteria  browse.Criteria
	pager     browse.Paginator
	filtered  []*domain.Show
	noResults bool

	view    ViewState
	loading bool
	loadErr string

	cursor int // selection within the current page

	searchInput textinput.Model
	searching   bool

	genreMenuOpen bool
	genreCursor   int
	sortMenuOpen  bool
	sortCursor    int

	// Detail view
	detailShow    *domain.Show
	seasons       []domain.Season
	detailLoading bool
	detailErr     string
	seasonIdx     int
	episodeIdx    int
	epFilterInput textinput.Model
	epFiltering   bool

	// Favorites view
	favSort   domain.FavoriteSort
	favGroups []domain.FavoriteShowGroup

	// Omnibar (quick jump)
	omnibarOpen    bool
	omnibarInput   textinput.Model
	omnibarResults []*domain.Show
	omnibarCursor  int

	confirmQuit bool

	width  int
	height int
}

// NewModel wires the model to its services. initialRoute is the optional
// deep-link path from the command line; restoring it is deferred until the
// catalog has loaded.
func NewModel(
	repo *catalog.Repository,
	favs *favorites.Store,
	session *playback.Session,
	bridge *nav.Bridge,
	persistence domain.Store,
	pageSize int,
	darkDefault bool,
	initialRoute string,
) Model {
	search := textinput.New()
	search.Placeholder = "Search shows..."
	search.CharLimit = 64

	omnibar := textinput.New()
	omnibar.Placeholder = "Jump to show..."
	omnibar.CharLimit = 64

	epFilter := textinput.New()
	epFilter.Placeholder = "Filter episodes..."
	epFilter.CharLimit = 64

	dark := persistence.GetDarkMode(darkDefault)
	theme := styles.LightTheme()
	if dark {
		theme = styles.DarkTheme()
	}

	pager := browse.NewPaginator(pageSize)
	if page, ok := persistence.GetCurrentPage(); ok {
		// Clamped against the first derived listing
		pager.Current = page
	}

	bridge.SetInitial(initialRoute)

	m := Model{
		keys:          DefaultKeyMap(),
		theme:         theme,
		dark:          dark,
		repo:          repo,
		favorites:     favs,
		session:       session,
		bridge:        bridge,
		persistence:   persistence,
		pager:         pager,
		loading:       true,
		favSort:       domain.FavoriteSortTitleAsc,
		searchInput:   search,
		omnibarInput:  omnibar,
		epFilterInput: epFilter,
	}

	if bridge.Route().Kind == nav.RouteFavorites {
		m.view = ViewFavorites
		m.favGroups = favs.Grouped(m.favSort)
	}

	return m
}

// Init starts the catalog fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadCatalogCmd(m.repo), textinput.Blink)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case CatalogLoadedMsg:
		m.loading = false
		m.loadErr = ""
		m.reDerive()
		// Answer a parked deep link now that ids can resolve
		if id, ok := m.bridge.Resolve(func(showID string) bool {
			_, found := m.repo.Find(showID)
			return found
		}); ok {
			return m, m.openDetail(id)
		}
		return m, nil

	case CatalogErrMsg:
		m.loading = false
		m.loadErr = msg.Err.Error()
		return m, nil

	case DetailLoadedMsg:
		// Discard results for a detail view that was closed or replaced
		if m.detailShow == nil || m.detailShow.ID != msg.ShowID {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = ""
		m.seasons = msg.Seasons
		m.seasonIdx = 0
		m.episodeIdx = 0
		return m, nil

	case DetailErrMsg:
		if m.detailShow == nil || m.detailShow.ID != msg.ShowID {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = msg.Err.Error()
		return m, nil

	case TimeUpdateMsg:
		m.session.OnTimeUpdate(msg.Seconds)
		return m, nil

	case DurationChangedMsg:
		m.session.OnDurationChange(msg.Seconds)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches keys by mode precedence: quit confirmation, then
// omnibar, then text inputs, then menus, then the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.session.Shutdown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Deny):
			m.confirmQuit = false
		}
		return m, nil
	}

	if m.omnibarOpen {
		return m.handleOmnibarKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.epFiltering {
		return m.handleEpisodeFilterKey(msg)
	}

	if m.genreMenuOpen {
		return m.handleGenreMenuKey(msg)
	}

	if m.sortMenuOpen {
		return m.handleSortMenuKey(msg)
	}

	// Global bindings
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.session.State() == domain.SessionPlaying {
			m.confirmQuit = true
			return m, nil
		}
		m.session.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		m.session.TogglePlay()
		return m, nil

	case key.Matches(msg, m.keys.SeekBack):
		m.session.Seek(m.session.Snapshot().CurrentTime - seekStep)
		return m, nil

	case key.Matches(msg, m.keys.SeekAhead):
		m.session.Seek(m.session.Snapshot().CurrentTime + seekStep)
		return m, nil

	case key.Matches(msg, m.keys.DarkMode):
		m.dark = !m.dark
		if m.dark {
			m.theme = styles.DarkTheme()
		} else {
			m.theme = styles.LightTheme()
		}
		m.persistence.SaveDarkMode(m.dark)
		return m, nil

	case key.Matches(msg, m.keys.Omnibar):
		if m.repo.Loaded() {
			m.omnibarOpen = true
			m.omnibarInput.SetValue("")
			m.omnibarInput.Focus()
			m.omnibarResults = nil
			m.omnibarCursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Favorites):
		if m.view != ViewFavorites {
			m.bridge.OpenFavorites()
			m.view = ViewFavorites
			m.favGroups = m.favorites.Grouped(m.favSort)
		}
		return m, nil
	}

	switch m.view {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		if m.loadErr != "" {
			m.loading = true
			m.loadErr = ""
			return m, LoadCatalogCmd(m.repo)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Genre):
		m.genreMenuOpen = true
		m.genreCursor = 0

	case key.Matches(msg, m.keys.Sort):
		m.sortMenuOpen = true
		m.sortCursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.currentPage())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.Left):
		m.pager.Prev(len(m.filtered))
		m.persistence.SaveCurrentPage(m.pager.Current)
		m.clampCursor()

	case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.Right):
		m.pager.Next(len(m.filtered))
		m.persistence.SaveCurrentPage(m.pager.Current)
		m.clampCursor()

	case key.Matches(msg, m.keys.Enter):
		page := m.currentPage()
		if m.cursor < len(page) {
			show := page[m.cursor]
			m.bridge.SelectShow(show.ID)
			return m, m.openDetail(show.ID)
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.criteria.SearchTerm = m.searchInput.Value()
	m.reDerive()
	return m, cmd
}

func (m Model) handleGenreMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Entry 0 is "All Genres", then the static table in order
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.genreCursor > 0 {
			m.genreCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.genreCursor < len(domain.Genres) {
			m.genreCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.genreCursor == 0 {
			m.criteria.GenreID = 0
		} else {
			m.criteria.GenreID = domain.Genres[m.genreCursor-1].ID
		}
		m.genreMenuOpen = false
		m.reDerive()
	case key.Matches(msg, m.keys.Back):
		m.genreMenuOpen = false
	}
	return m, nil
}

func (m Model) handleSortMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sortCursor > 0 {
			m.sortCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sortCursor < len(browse.SortOptions)-1 {
			m.sortCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.criteria.Sort = browse.SortOptions[m.sortCursor]
		m.sortMenuOpen = false
		m.reDerive()
	case key.Matches(msg, m.keys.Back):
		m.sortMenuOpen = false
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if m.detailErr != "" && m.detailShow != nil {
			m.detailLoading = true
			m.detailErr = ""
			return m, LoadDetailCmd(m.repo, m.detailShow.ID)
		}

	case key.Matches(msg, m.keys.Search):
		m.epFiltering = true
		m.epFilterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Left):
		if m.seasonIdx > 0 {
			m.seasonIdx--
			m.episodeIdx = 0
			m.epFilterInput.SetValue("")
		}

	case key.Matches(msg, m.keys.Right):
		if m.seasonIdx < len(m.seasons)-1 {
			m.seasonIdx++
			m.episodeIdx = 0
			m.epFilterInput.SetValue("")
		}

	case key.Matches(msg, m.keys.Up):
		if m.episodeIdx > 0 {
			m.episodeIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.episodeIdx < len(m.visibleEpisodes())-1 {
			m.episodeIdx++
		}

	case key.Matches(msg, m.keys.Favorite):
		if season, ep, ok := m.selectedEpisode(); ok {
			ref := domain.EpisodeRef{ShowID: m.detailShow.ID, Season: season.Number, Episode: ep.Number}
			m.favorites.Toggle(ref, ep, m.detailShow.Title, season.Title)
		}

	case key.Matches(msg, m.keys.Enter):
		if season, ep, ok := m.selectedEpisode(); ok {
			ref := domain.EpisodeRef{ShowID: m.detailShow.ID, Season: season.Number, Episode: ep.Number}
			if err := m.session.LoadEpisode(ref, ep.Title, ep.AudioURL); err == nil {
				m.session.Play()
			}
		}
	}
	return m, nil
}

func (m Model) handleEpisodeFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.epFiltering = false
		m.epFilterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.epFilterInput, cmd = m.epFilterInput.Update(msg)
	m.episodeIdx = 0
	return m, cmd
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.applyRoute(m.bridge.Back())
		return m, cmd

	case key.Matches(msg, m.keys.Sort):
		m.favSort = nextFavoriteSort(m.favSort)
		m.favGroups = m.favorites.Grouped(m.favSort)
	}
	return m, nil
}

// nextFavoriteSort cycles through the favorites sort keys
func nextFavoriteSort(s domain.FavoriteSort) domain.FavoriteSort {
	switch s {
	case domain.FavoriteSortTitleAsc:
		return domain.FavoriteSortTitleDesc
	case domain.FavoriteSortTitleDesc:
		return domain.FavoriteSortDateNewest
	case domain.FavoriteSortDateNewest:
		return domain.FavoriteSortDateOldest
	default:
		return domain.FavoriteSortTitleAsc
	}
}

// applyRoute opens whatever view a route addresses. Used when history
// navigation lands on a route rather than a direct selection.
func (m *Model) applyRoute(r nav.Route) tea.Cmd {
	switch r.Kind {
	case nav.RouteShow:
		if _, ok := m.repo.Find(r.ShowID); ok {
			return m.openDetail(r.ShowID)
		}
		m.view = ViewBrowse
	case nav.RouteFavorites:
		m.view = ViewFavorites
		m.favGroups = m.favorites.Grouped(m.favSort)
	default:
		m.view = ViewBrowse
		m.detailShow = nil
		m.seasons = nil
	}
	return nil
}

// openDetail switches to a show's detail view and starts its season fetch.
// Seasons are re-fetched on every open; they are not cached.
func (m *Model) openDetail(showID string) tea.Cmd {
	show, ok := m.repo.Find(showID)
	if !ok {
		return nil
	}
	m.detailShow = show
	m.view = ViewDetail
	m.detailLoading = true
	m.detailErr = ""
	m.seasons = nil
	m.seasonIdx = 0
	m.episodeIdx = 0
	m.epFilterInput.SetValue("")
	return LoadDetailCmd(m.repo, showID)
}

func (m *Model) closeDetail() {
	m.bridge.CloseDetail()
	m.view = ViewBrowse
	m.detailShow = nil
	m.seasons = nil
	m.detailErr = ""
}

// reDerive re-runs the filter -> sort -> paginate pipeline after any
// criteria or catalog change. Derivation order is fixed and idempotent.
func (m *Model) reDerive() {
	m.filtered, m.noResults = browse.Derive(m.repo.Shows(), m.criteria)
	m.pager.Normalize(len(m.filtered))
	m.persistence.SaveCurrentPage(m.pager.Current)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	page := m.currentPage()
	if m.cursor >= len(page) {
		m.cursor = len(page) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// currentPage returns the visible slice of the filtered listing.
func (m *Model) currentPage() []*domain.Show {
	return browse.Page(m.filtered, m.pager.Size, m.pager.Current)
}

// selectedEpisode resolves the detail cursor to a concrete episode.
func (m *Model) selectedEpisode() (domain.Season, domain.Episode, bool) {
	if m.detailShow == nil || m.seasonIdx >= len(m.seasons) {
		return domain.Season{}, domain.Episode{}, false
	}
	season := m.seasons[m.seasonIdx]
	eps := m.visibleEpisodes()
	if m.episodeIdx >= len(eps) {
		return domain.Season{}, domain.Episode{}, false
	}
	return season, eps[m.episodeIdx], true
}
