package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/five82/launchtrack/internal/launch"
)

// WriteTable prints rows as a bordered plain-text table under title. An empty
// list prints the same notice the list view shows.
func WriteTable(w io.Writer, title string, rows []launch.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", title, emptyListText)
		return err
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Mission", "Date", "Rocket", "Launchpad", "Success")
	for _, r := range rows {
		t.Row(strconv.Itoa(r.Index), r.Mission, r.Date, r.Rocket, r.Launchpad, r.Outcome.Symbol())
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", title, t.Render())
	return err
}

// PlainTitle returns the heading used for a list kind in plain output.
func PlainTitle(upcoming bool) string {
	if upcoming {
		return titleUpcoming
	}
	return titleRecent
}
