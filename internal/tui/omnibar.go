package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/castwave/castwave/internal/domain"
)

const omnibarMaxResults = 10

// handleOmnibarKey drives the quick-jump modal: fuzzy match across every
// show title in the catalog, independent of the active listing filter.
func (m Model) handleOmnibarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.omnibarOpen = false
		m.omnibarInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.omnibarCursor > 0 {
			m.omnibarCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.omnibarCursor < len(m.omnibarResults)-1 {
			m.omnibarCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.omnibarCursor < len(m.omnibarResults) {
			show := m.omnibarResults[m.omnibarCursor]
			m.omnibarOpen = false
			m.omnibarInput.Blur()
			m.bridge.SelectShow(show.ID)
			return m, m.openDetail(show.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.omnibarInput, cmd = m.omnibarInput.Update(msg)
	m.omnibarResults = m.rankShows(m.omnibarInput.Value())
	m.omnibarCursor = 0
	return m, cmd
}

// rankShows fuzzy-ranks catalog titles against the query.
func (m Model) rankShows(query string) []*domain.Show {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	shows := m.repo.Shows()
	titles := make([]string, len(shows))
	for i, s := range shows {
		titles[i] = s.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	results := make([]*domain.Show, 0, omnibarMaxResults)
	for _, r := range ranks {
		results = append(results, shows[r.OriginalIndex])
		if len(results) == omnibarMaxResults {
			break
		}
	}
	return results
}

func (m Model) omnibarView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Jump to show") + "\n\n")
	b.WriteString(m.omnibarInput.View() + "\n\n")

	for i, show := range m.omnibarResults {
		line := show.Title + "  " + m.theme.Dim.Render(show.SeasonsLabel())
		if i == m.omnibarCursor {
			line = m.theme.Selected.Render(show.Title) + "  " + m.theme.Dim.Render(show.SeasonsLabel())
		}
		b.WriteString(line + "\n")
	}

	if m.omnibarInput.Value() != "" && len(m.omnibarResults) == 0 {
		b.WriteString(m.theme.Dim.Render("no matches"))
	}

	b.WriteString("\n" + m.theme.Help.Render("↑/↓ select · enter open · esc close"))
	return b.String()
}
