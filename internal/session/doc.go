// Package session owns the in-memory state of one launchtrack run.
//
// # Overview
//
// The launch package is stateless: every loader fetches, normalizes and
// returns. Something still has to remember the last upcoming list, the last
// past list and the names used to render them, so that the detail view and
// search can work off what the user just saw. That is this package.
//
// # Core Types
//
// Store:
//   - Holds the upcoming and past caches plus the rocket/launchpad names
//   - Replaces lists wholesale; a failed fetch replaces a list with an empty one
//   - Snapshot() returns defensive copies
//
// Tracker:
//   - Runs the menu actions (upcoming, recent, search, refresh all)
//   - Applies the browse limit (20) and the search limit (50)
//   - Loads the past list before a search when nothing is cached yet
//
// # Concurrency Model
//
// Bubble Tea runs fetch commands off its update loop, so the Store keeps a
// sync.RWMutex even though the UI never has more than one fetch in flight.
//
// # Error Propagation
//
// Tracker methods return whatever fetch errors occurred, joined with
// errors.Join, and record the same error as Snapshot.LastError. The returned
// launches are always usable, if empty.
package session
