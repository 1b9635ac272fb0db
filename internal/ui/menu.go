package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	binding key.Binding
	label   string
}

func (m Model) menuEntries() []menuEntry {
	return []menuEntry{
		{m.keys.Upcoming, "View upcoming launches"},
		{m.keys.Recent, "View recent launches"},
		{m.keys.Search, "Search recent launches by mission name"},
		{m.keys.Refresh, "Refresh all data"},
		{m.keys.Exit, "Exit"},
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Upcoming):
		return m, m.startFetch(upcomingCmd(m.ctx, m.tracker))
	case key.Matches(msg, m.keys.Recent):
		return m, m.startFetch(recentCmd(m.ctx, m.tracker))
	case key.Matches(msg, m.keys.Search):
		if m.loading {
			return m, nil
		}
		m.view = ViewSearch
		m.searchInput.Reset()
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.startFetch(refreshCmd(m.ctx, m.tracker))
		if cmd != nil {
			m.setStatus("Refreshing all cached data...", false)
		}
		return m, cmd
	case key.Matches(msg, m.keys.Diagnostics):
		m.view = ViewDiagnostics
		return m, readLogCmd(m.logPath)
	}
	return m, nil
}

func (m Model) renderMenu() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("SpaceX Launch Tracker"))
	b.WriteString("\n")
	source := m.source
	if source == "" {
		source = "api.spacexdata.com"
	}
	b.WriteString(styles.FaintText.Render("Live data from " + source))
	b.WriteString("\n\n")

	for _, e := range m.menuEntries() {
		b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("%s.", e.binding.Help().Key)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(e.label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Choose an option"))

	return m.renderTitledBox("Menu", b.String(), m.width, m.contentHeight())
}
