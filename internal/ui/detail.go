package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-wordwrap"

	"github.com/five82/launchtrack/internal/launch"
)

const (
	detailTitle      = "Launch details"
	detailLabelWidth = 12
	descriptionWrap  = 90
)

func (m *Model) openDetail(l launch.Launch) {
	m.detail = launch.Describe(l, m.ref)
	m.view = ViewDetail
	m.refreshDetailViewport()
	m.detailViewport.GotoTop()
}

func (m *Model) refreshDetailViewport() {
	m.detailViewport.SetContent(renderDetailBody(m.detail, m.theme, m.detailViewport.Width))
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
		m.view = ViewList
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) renderDetail() string {
	return m.renderTitledBox(detailTitle, m.detailViewport.View(), m.width, m.contentHeight())
}

// renderDetailBody lays out d as labelled lines. The description is wrapped at
// 90 columns, or narrower when width is smaller.
func renderDetailBody(d launch.Detail, theme Theme, width int) string {
	styles := theme.Styles()
	label := func(name string) string {
		return styles.Label.Bold(true).Render(name + ":")
	}
	field := func(name, value string) string {
		return label(name) + " " + styles.Text.Render(value)
	}

	wrapAt := descriptionWrap
	if width > 0 && width < wrapAt {
		wrapAt = width
	}

	lines := []string{
		field("Mission", d.Mission),
		field("Flight #", d.Flight),
		field("Date", d.Date),
		field("Rocket", d.Rocket),
		field("Launchpad", d.Launchpad),
		label("Status") + " " + theme.OutcomeStyle(d.Outcome).Render(d.Outcome.Label()),
		"",
		label("Details"),
	}
	for _, line := range strings.Split(wordwrap.WrapString(d.Description, uint(wrapAt)), "\n") {
		lines = append(lines, styles.Text.Render(line))
	}
	lines = append(lines,
		"",
		field("Webcast", d.Webcast),
		field("Article", d.Article),
		field("Wikipedia", d.Wikipedia),
	)
	return strings.Join(lines, "\n")
}
