package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchTitle      = "Search recent launches"
	msgNothingCached = "No launches loaded yet. Try viewing past launches first."
)

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput.Blur()
		m.view = ViewMenu
		return m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		m.searchInput.Blur()
		if query == "" {
			m.view = ViewMenu
			return m, nil
		}
		return m, m.startFetch(searchCmd(m.ctx, m.tracker, query))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleSearchResult shows matches as a list, or explains why there are none
// and returns to the menu.
func (m Model) handleSearchResult(msg searchMsg) Model {
	m.applyFetchError(msg.err, "")
	switch {
	case msg.loaded == 0:
		if msg.err == nil {
			m.setStatus(msgNothingCached, false)
		}
		m.view = ViewMenu
	case !msg.ok:
		m.view = ViewMenu
	case len(msg.matches) == 0:
		m.setStatus(fmt.Sprintf("No launches found matching '%s'.", msg.query), false)
		m.view = ViewMenu
	default:
		m.showList(fmt.Sprintf("Search results for '%s'", msg.query), msg.matches)
	}
	return m
}

func (m Model) renderSearch() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Enter part of a mission name to search (case-insensitive)"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Searching..."))
	}
	return m.renderTitledBox(searchTitle, b.String(), m.width, m.contentHeight())
}
