package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) viewName() string {
	switch m.view {
	case ViewList:
		return m.listTitle
	case ViewDetail:
		return detailTitle
	case ViewSearch:
		return "Search"
	case ViewDiagnostics:
		return "Diagnostics"
	default:
		return "Menu"
	}
}

// renderHeader renders the top bar: logo, current view, last update and theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("launchtrack"),
		styles.Text.Render(m.viewName()),
	}
	if m.tracker != nil {
		if updated := m.tracker.Store().Snapshot().LastUpdated; !updated.IsZero() {
			parts = append(parts,
				styles.MutedText.Render("Updated")+" "+styles.Text.Render(updated.Format("15:04:05")))
		}
	}
	if m.loading {
		parts = append(parts, styles.WarningText.Bold(true).Render("Loading..."))
	}
	parts = append(parts, styles.AccentText.Render("T")+":"+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderStatusLine shows the latest message or error.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	if m.status == "" {
		return ""
	}
	style := styles.InfoText
	if m.statusErr {
		style = styles.DangerText
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(style.Render(truncate(m.status, max(m.width-2, 1))))
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys.forView(m.view)))
}

func newHelpModel(theme Theme) help.Model {
	styles := theme.Styles()
	h := help.New()
	h.ShortSeparator = "  "
	h.Ellipsis = "…"
	h.Styles = help.Styles{
		ShortKey:       styles.AccentText,
		ShortDesc:      styles.MutedText,
		ShortSeparator: styles.FaintText,
		Ellipsis:       styles.FaintText,
		FullKey:        styles.AccentText,
		FullDesc:       styles.MutedText,
		FullSeparator:  styles.FaintText,
	}
	return h
}
