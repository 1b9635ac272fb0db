// Package ui provides the launchtrack terminal interface.
//
// # Architecture Overview
//
// The interface is a single Bubble Tea model. Each menu action becomes a
// tea.Cmd that calls into session.Tracker off the update loop and reports
// back with a message; the model only ever renders what the tracker's Store
// holds. A loading flag keeps at most one fetch in flight.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View dispatch and Run
//   - commands.go: fetch commands, their messages and status-line errors
//   - menu.go: the numbered main menu
//   - table.go: launch list (bubbles/table) and number selection
//   - detail.go: launch detail viewport
//   - search.go: mission-name search prompt (bubbles/textinput)
//   - diagnostics.go: tail of the diagnostics log with a level filter
//   - header.go, help.go, layout.go: chrome, help overlay and framed panels
//   - theme.go, keys.go: palettes and key bindings
//   - plain.go: non-interactive table output for --print
//
// # Views
//
//   - Menu: 1 upcoming, 2 recent, 3 search, 4 refresh all, 0 exit, l diagnostics
//   - List: #, Mission, Date, Rocket, Launchpad, Success (✔ ✖ ?). Move with
//     j/k and press enter, or type a launch number and press enter.
//   - Detail: every field of one launch, description wrapped at 90 columns
//   - Search: case-insensitive substring match over the cached past launches
//   - Diagnostics: last lines of the log file, filterable by level
//
// # Errors
//
// Fetch failures never leave the list views broken. The list renders empty
// ("No launches to display.") and the status line names the URL that failed:
//
//	Error: Failed to fetch https://api.spacexdata.com/v5/launches/upcoming
//
// Invalid launch numbers are reported the same way and the list stays open.
//
// # Key Bindings
//
//   - ?: Toggle help
//   - T: Cycle theme (saved to prefs.toml)
//   - esc or q: Back
//   - ctrl+c: Quit; Run returns ErrInterrupted
package ui
