// Package config handles loading and parsing the launchtrack configuration file.
//
// # Overview
//
// launchtrack works without any configuration. The file only exists to point
// the client at a different API root (a mirror or a local fixture server), to
// change the request timeout or list limits, and to move the diagnostics log.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/launchtrack/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing, blank or non-positive, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/launchtrack/config.toml
//   - API root: https://api.spacexdata.com/v5
//   - Request timeout: 15 seconds
//   - Recent launches shown: 20
//   - Past launches searched: 50
//   - Log directory: ~/.local/share/launchtrack
//   - Log file: <log_dir>/launchtrack.log
//   - Log level: info
//
// # TOML Format
//
//	api_base = "https://api.spacexdata.com/v5"
//	timeout_seconds = 15
//	recent_limit = 20
//	search_limit = 50
//	log_dir = "~/.local/share/launchtrack"
//	log_level = "info"
//
// Every field is optional. Tilde expansion is performed on log_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Command-line flags are applied on top of the loaded Config by the app
// package; this package does not know about them.
package config
