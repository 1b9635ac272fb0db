// Package logtail reads the tail of the launchtrack diagnostics log.
//
// # Overview
//
// The diagnostics view shows the most recent lines written by the logrus
// logger that the diag package installs. Read extracts the last N lines of
// the file in a single pass using a ring buffer of N entries, so memory stays
// bounded no matter how large the log grows.
//
// # Levels
//
// Lines are produced by logrus' text formatter:
//
//	time="2026-10-16T09:00:00Z" level=warning msg="fetch failed, treating as empty" collection=rockets
//
// LevelOf pulls the level=... field out of such a line so the UI can tint it,
// and Filter drops everything below a chosen level. Lines without a level
// field report LevelNone.
//
// # Error Handling
//
// Read returns no lines and no error when the file does not exist yet (the
// logger creates it lazily). Other I/O errors are returned wrapped.
package logtail
