package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings. Digits in the list view are handled
// separately as launch-number input.
type keyMap struct {
	// Global
	Interrupt  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Back       key.Binding

	// Menu
	Upcoming    key.Binding
	Recent      key.Binding
	Search      key.Binding
	Refresh     key.Binding
	Exit        key.Binding
	Diagnostics key.Binding

	// Lists and scrolling
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Erase    key.Binding

	// Diagnostics
	Reload     key.Binding
	CycleLevel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "Back"),
		),

		Upcoming: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Upcoming launches"),
		),
		Recent: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Recent launches"),
		),
		Search: key.NewBinding(
			key.WithKeys("3", "/"),
			key.WithHelp("3", "Search by name"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("4", "r"),
			key.WithHelp("4", "Refresh all data"),
		),
		Exit: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Exit"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Diagnostics log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Show details"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Erase digit"),
		),

		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload log"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle level filter"),
		),
	}
}

// viewKeys is the help.KeyMap shown for one view.
type viewKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (v viewKeys) ShortHelp() []key.Binding  { return v.short }
func (v viewKeys) FullHelp() [][]key.Binding { return v.full }

func (k keyMap) forView(v View) viewKeys {
	general := []key.Binding{k.CycleTheme, k.Help, k.Interrupt}
	switch v {
	case ViewList:
		digits := key.NewBinding(key.WithKeys("0"), key.WithHelp("0-9", "Type launch number"))
		return viewKeys{
			short: []key.Binding{k.Up, k.Down, digits, k.Select, k.Back, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
				{digits, k.Erase, k.Select, k.Back},
				general,
			},
		}
	case ViewDetail:
		return viewKeys{
			short: []key.Binding{k.Up, k.Down, k.Back, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.PageUp, k.PageDown, k.Back},
				general,
			},
		}
	case ViewSearch:
		confirm := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Search"))
		cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel"))
		return viewKeys{
			short: []key.Binding{confirm, cancel},
			full:  [][]key.Binding{{confirm, cancel}, {k.Interrupt}},
		}
	case ViewDiagnostics:
		return viewKeys{
			short: []key.Binding{k.Reload, k.CycleLevel, k.Up, k.Down, k.Back, k.Help},
			full: [][]key.Binding{
				{k.Reload, k.CycleLevel},
				{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown, k.Back},
				general,
			},
		}
	default:
		return viewKeys{
			short: []key.Binding{k.Upcoming, k.Recent, k.Search, k.Refresh, k.Exit, k.Help},
			full: [][]key.Binding{
				{k.Upcoming, k.Recent, k.Search, k.Refresh, k.Exit},
				{k.Diagnostics},
				general,
			},
		}
	}
}
