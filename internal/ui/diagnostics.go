package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/launchtrack/internal/logtail"
)

var levelCycle = []logtail.Level{
	logtail.LevelNone,
	logtail.LevelInfo,
	logtail.LevelWarn,
	logtail.LevelError,
}

func levelName(l logtail.Level) string {
	switch l {
	case logtail.LevelDebug:
		return "debug"
	case logtail.LevelInfo:
		return "info+"
	case logtail.LevelWarn:
		return "warn+"
	case logtail.LevelError:
		return "error"
	default:
		return "all"
	}
}

func nextLevel(current logtail.Level) logtail.Level {
	for i, l := range levelCycle {
		if l == current {
			return levelCycle[(i+1)%len(levelCycle)]
		}
	}
	return levelCycle[0]
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = ViewMenu
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, readLogCmd(m.logPath)
	case key.Matches(msg, m.keys.CycleLevel):
		m.logLevel = nextLevel(m.logLevel)
		m.refreshLogViewport(true)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) handleLogLines(msg logMsg) {
	if msg.err != nil {
		m.log.WithError(msg.err).Warn("read diagnostics log failed")
		m.setStatus("Error: "+msg.err.Error(), true)
	}
	m.logLines = msg.lines
	m.refreshLogViewport(true)
}

// refreshLogViewport re-renders the filtered lines. follow jumps to the newest
// line.
func (m *Model) refreshLogViewport(follow bool) {
	lines := logtail.Filter(m.logLines, m.logLevel)
	if len(lines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().MutedText.Render("No log lines to display."))
		return
	}
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, m.theme.LevelStyle(logtail.LevelOf(line)).Render(line))
	}
	m.logViewport.SetContent(strings.Join(rendered, "\n"))
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) renderDiagnostics() string {
	path := m.logPath
	if path == "" {
		path = "logging disabled"
	}
	title := fmt.Sprintf("Diagnostics [%s] %s", levelName(m.logLevel), truncate(path, 60))
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.contentHeight())
}
