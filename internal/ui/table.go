package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/launchtrack/internal/launch"
)

const (
	emptyListText = "No launches to display."
	maxTypedLen   = 6
)

// Column widths for the launch table. Mission and Launchpad share whatever
// is left after the fixed columns.
const (
	colIndexWidth   = 4
	colDateWidth    = 20
	colRocketWidth  = 14
	colSuccessWidth = 7
	minFillWidth    = 12
)

func newLaunchTable(theme Theme) table.Model {
	return table.New(
		table.WithColumns(launchColumns(100)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(5),
		table.WithStyles(theme.TableStyles()),
	)
}

// launchColumns sizes the six launch columns to fit width.
func launchColumns(width int) []table.Column {
	// Each cell carries one column of padding on either side.
	fixed := colIndexWidth + colDateWidth + colRocketWidth + colSuccessWidth
	fill := max(width-fixed-6*2, 2*minFillWidth)
	mission := fill * 55 / 100
	pad := fill - mission

	return []table.Column{
		{Title: "#", Width: colIndexWidth},
		{Title: "Mission", Width: mission},
		{Title: "Date", Width: colDateWidth},
		{Title: "Rocket", Width: colRocketWidth},
		{Title: "Launchpad", Width: pad},
		{Title: "Success", Width: colSuccessWidth},
	}
}

func tableRows(rows []launch.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			strconv.Itoa(r.Index),
			r.Mission,
			r.Date,
			r.Rocket,
			r.Launchpad,
			r.Outcome.Symbol(),
		})
	}
	return out
}

func (m *Model) resizeTable(width, height int) {
	m.table.SetColumns(launchColumns(width))
	// One line below the table echoes the typed launch number.
	m.table.SetHeight(max(height-1, 3))
}

// showList switches to the list view for launches.
func (m *Model) showList(title string, launches []launch.Launch) {
	m.view = ViewList
	m.listTitle = title
	m.launches = launches
	m.ref = m.snapshotReference()
	m.typed = ""
	m.table.SetRows(tableRows(launch.Rows(launches, m.ref)))
	m.table.SetCursor(0)
	m.table.Focus()
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = ViewMenu
		m.typed = ""
		return m, nil
	case key.Matches(msg, m.keys.Erase):
		if m.typed != "" {
			r := []rune(m.typed)
			m.typed = string(r[:len(r)-1])
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.selectLaunch()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !m.isTableKey(msg) {
		if len(m.typed) < maxTypedLen {
			m.typed += string(msg.Runes)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) isTableKey(msg tea.KeyMsg) bool {
	km := m.table.KeyMap
	return key.Matches(msg,
		km.LineUp, km.LineDown,
		km.PageUp, km.PageDown,
		km.HalfPageUp, km.HalfPageDown,
		km.GotoTop, km.GotoBottom,
	)
}

// selectLaunch opens the launch named by the typed number, or the highlighted
// row when nothing was typed. Enter on an empty list returns to the menu.
func (m *Model) selectLaunch() {
	if len(m.launches) == 0 {
		m.view = ViewMenu
		return
	}

	idx := m.table.Cursor()
	if strings.TrimSpace(m.typed) != "" {
		var problem string
		idx, problem = parseSelection(m.typed, len(m.launches))
		m.typed = ""
		if problem != "" {
			m.setStatus(problem, true)
			return
		}
	}
	if idx < 0 || idx >= len(m.launches) {
		return
	}
	m.openDetail(m.launches[idx])
}

func (m Model) renderList() string {
	styles := m.theme.Styles()
	title := m.listTitle

	if len(m.launches) == 0 {
		msg := styles.MutedText.Render(emptyListText)
		return m.renderTitledBox(title, msg, m.width, m.contentHeight())
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.typed != "" {
		b.WriteString(styles.AccentText.Render("Launch number: " + m.typed))
	} else {
		b.WriteString(styles.FaintText.Render("Enter a launch number to view details, or press esc to go back"))
	}
	return m.renderTitledBox(title, b.String(), m.width, m.contentHeight())
}
