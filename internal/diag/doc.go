// Package diag sets up the launchtrack diagnostics log.
//
// The terminal belongs to the UI, so nothing is logged to stdout or stderr
// while it runs. Instead a logrus logger appends plain text lines to
// <log_dir>/launchtrack.log, which the diagnostics view tails through the
// logtail package. When the log file cannot be opened the application keeps
// running with a discard logger after printing a one-line notice.
package diag
