// Package prefs persists launchtrack user preferences in
// ~/.config/launchtrack/prefs.toml. Unlike config, prefs are written by the
// application itself (theme cycling, start view) and never fail a run.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/launchtrack/internal/config"
)

// Start views accepted in prefs.toml.
const (
	StartMenu     = "menu"
	StartUpcoming = "upcoming"
	StartRecent   = "recent"
)

// Prefs holds user preferences for launchtrack.
type Prefs struct {
	Theme     string `toml:"theme"`
	StartView string `toml:"start_view"`
}

const (
	defaultPrefsPath = "~/.config/launchtrack/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, StartView: StartMenu}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path (empty means DefaultPath). Missing, unreadable
// or malformed files yield Defaults; individual blank or unknown values are
// replaced by their default.
func Load(path string) Prefs {
	resolved, err := config.ExpandPath(orDefaultPath(path))
	if err != nil {
		return Defaults()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults()
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	return p.normalized()
}

// Save writes p to path (empty means DefaultPath), creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := config.ExpandPath(orDefaultPath(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalized() Prefs {
	def := Defaults()
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	p.StartView = strings.ToLower(strings.TrimSpace(p.StartView))
	if !slices.Contains([]string{StartMenu, StartUpcoming, StartRecent}, p.StartView) {
		p.StartView = def.StartView
	}
	return p
}

func orDefaultPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return defaultPrefsPath
	}
	return path
}
