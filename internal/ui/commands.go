package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/launchtrack/internal/launch"
	"github.com/five82/launchtrack/internal/logtail"
	"github.com/five82/launchtrack/internal/session"
	"github.com/five82/launchtrack/internal/spacex"
)

const (
	titleUpcoming = "Upcoming launches"
	titleRecent   = "Recent launches"

	logTailLines = 500
)

// Messages

type listMsg struct {
	title    string
	launches []launch.Launch
	err      error
}

type searchMsg struct {
	query   string
	matches []launch.Launch
	ok      bool
	loaded  int
	err     error
}

type refreshMsg struct{ err error }

type logMsg struct {
	lines []string
	err   error
}

// Commands

func upcomingCmd(ctx context.Context, t *session.Tracker) tea.Cmd {
	return func() tea.Msg {
		launches, err := t.Upcoming(ctx)
		return listMsg{title: titleUpcoming, launches: launches, err: err}
	}
}

func recentCmd(ctx context.Context, t *session.Tracker) tea.Cmd {
	return func() tea.Msg {
		launches, err := t.Recent(ctx)
		return listMsg{title: titleRecent, launches: launches, err: err}
	}
}

func searchCmd(ctx context.Context, t *session.Tracker, query string) tea.Cmd {
	return func() tea.Msg {
		matches, ok, err := t.Search(ctx, query)
		return searchMsg{
			query:   query,
			matches: matches,
			ok:      ok,
			loaded:  len(t.Store().Snapshot().Past),
			err:     err,
		}
	}
}

func refreshCmd(ctx context.Context, t *session.Tracker) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{err: t.RefreshAll(ctx)}
	}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logMsg{lines: lines, err: err}
	}
}

// DescribeError renders err for the status line. Fetch failures name the URL
// that failed.
func DescribeError(err error) string {
	var fe *spacex.FetchError
	if errors.As(err, &fe) {
		return "Error: Failed to fetch " + fe.URL
	}
	return "Error: " + err.Error()
}
