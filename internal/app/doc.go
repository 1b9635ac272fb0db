// Package app is the launchtrack composition root.
//
// # Overview
//
// Run wires configuration, logging, the API client, the session tracker and
// the UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read ~/.config/launchtrack/config.toml
//	       ├─────> applyOverrides()     Command-line flags win over the file
//	       ├─────> diag.OpenOrDiscard() Diagnostics log (or discard)
//	       ├─────> spacex.NewClient()   HTTP client for the API root
//	       ├─────> session.NewTracker() Caches and menu actions
//	       └─────> ui.Run() or Print()  Interactive TUI, or one plain table
//
// Nothing polls in the background. Data is fetched only when the user asks
// for it, one request at a time.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Unreadable or invalid config.toml
//   - An API root that is not a usable URL
//   - An unknown --print list
//   - The UI failing to start, or the user interrupting it (ui.ErrInterrupted)
//
// Recoverable errors (logged and shown, the run continues):
//   - Any fetch failure: lists render empty and the failing URL is reported
//   - A log file that cannot be opened: logging is discarded after a notice
//
// # Plain Output
//
// With Options.Print set, Run skips the UI, prints the upcoming or past table
// to Stdout and reports fetch failures on Stderr. The table is printed even
// when it is empty so scripts see a stable shape.
package app
