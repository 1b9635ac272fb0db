package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/launchtrack/internal/launch"
	"github.com/five82/launchtrack/internal/logtail"
	"github.com/five82/launchtrack/internal/prefs"
	"github.com/five82/launchtrack/internal/session"
)

// ErrInterrupted is returned by Run when the user quits with ctrl+c.
var ErrInterrupted = errors.New("interrupted by user")

// View is the screen currently shown.
type View int

const (
	ViewMenu View = iota
	ViewList
	ViewDetail
	ViewSearch
	ViewDiagnostics
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Tracker   *session.Tracker
	Log       logrus.FieldLogger
	Source    string // shown under the title, usually the API host
	LogPath   string
	PrefsPath string
	Prefs     prefs.Prefs
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx       context.Context
	tracker   *session.Tracker
	log       logrus.FieldLogger
	source    string
	logPath   string
	prefsPath string
	prefs     prefs.Prefs

	theme    Theme
	keys     keyMap
	help     help.Model
	view     View
	width    int
	height   int
	ready    bool
	showHelp bool

	loading   bool
	status    string
	statusErr bool

	// List state
	listTitle string
	launches  []launch.Launch
	ref       launch.Reference
	table     table.Model
	typed     string

	// Detail state
	detail         launch.Detail
	detailViewport viewport.Model

	// Search state
	searchInput textinput.Model

	// Diagnostics state
	logLines    []string
	logLevel    logtail.Level
	logViewport viewport.Model

	interrupted bool
}

// New creates the model. A nil tracker is allowed in tests that never fetch.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Defaults()
	}

	theme := GetTheme(p.Theme)

	input := textinput.New()
	input.Placeholder = "part of a mission name"
	input.Prompt = "Search: "
	input.CharLimit = 120

	m := Model{
		ctx:            ctx,
		tracker:        opts.Tracker,
		log:            log,
		source:         opts.Source,
		logPath:        opts.LogPath,
		prefsPath:      opts.PrefsPath,
		prefs:          p,
		theme:          theme,
		keys:           defaultKeyMap(),
		help:           newHelpModel(theme),
		view:           ViewMenu,
		table:          newLaunchTable(theme),
		detailViewport: viewport.New(0, 0),
		searchInput:    input,
		logViewport:    viewport.New(0, 0),
	}
	if m.tracker != nil && (p.StartView == prefs.StartUpcoming || p.StartView == prefs.StartRecent) {
		m.loading = true
		m.setStatus("Loading...", false)
	}
	return m
}

// Init implements tea.Model.
// A start view other than the menu is fetched immediately; New has already
// marked the model as loading.
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	if m.prefs.StartView == prefs.StartRecent {
		return recentCmd(m.ctx, m.tracker)
	}
	return upcomingCmd(m.ctx, m.tracker)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case listMsg:
		m.loading = false
		m.applyFetchError(msg.err, "")
		m.showList(msg.title, msg.launches)
		return m, nil

	case searchMsg:
		m.loading = false
		return m.handleSearchResult(msg), nil

	case refreshMsg:
		m.loading = false
		m.applyFetchError(msg.err, "Data refreshed.")
		return m, nil

	case logMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	if m.view == ViewSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewList:
		return m.renderList()
	case ViewDetail:
		return m.renderDetail()
	case ViewSearch:
		return m.renderSearch()
	case ViewDiagnostics:
		return m.renderDiagnostics()
	default:
		return m.renderMenu()
	}
}

// contentHeight is the space between the header and the status/footer lines.
func (m Model) contentHeight() int {
	return max(m.height-3, 3)
}

func (m *Model) resize() {
	inner := max(m.width-2, 10)
	m.help.Width = m.width
	m.resizeTable(inner, m.contentHeight()-2)
	m.detailViewport.Width = inner - 2
	m.detailViewport.Height = m.contentHeight() - 2
	m.logViewport.Width = inner - 2
	m.logViewport.Height = m.contentHeight() - 2
	m.searchInput.Width = max(inner-len(m.searchInput.Prompt)-4, 10)
	if m.view == ViewDetail {
		m.refreshDetailViewport()
	}
	if m.view == ViewDiagnostics {
		m.refreshLogViewport(false)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		m.interrupted = true
		return m, tea.Quit
	}

	if m.view == ViewSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	switch m.view {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewDiagnostics:
		return m.handleDiagnosticsKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

// cycleTheme switches to the next palette and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.table.SetStyles(m.theme.TableStyles())
	m.help = newHelpModel(m.theme)
	m.help.Width = m.width
	m.prefs.Theme = m.theme.Name
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
			m.log.WithError(err).Warn("save prefs failed")
		}
	}
	if m.view == ViewDetail {
		m.refreshDetailViewport()
	}
	if m.view == ViewDiagnostics {
		m.refreshLogViewport(false)
	}
}

// startFetch marks the model busy and returns cmd. While a fetch is running
// further fetch requests are ignored.
func (m *Model) startFetch(cmd tea.Cmd) tea.Cmd {
	if m.loading || m.tracker == nil {
		return nil
	}
	m.loading = true
	m.setStatus("Loading...", false)
	return cmd
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// applyFetchError shows err in the status line, or ok when err is nil.
func (m *Model) applyFetchError(err error, ok string) {
	if err != nil {
		m.log.WithError(err).Warn("fetch completed with errors")
		m.setStatus(DescribeError(err), true)
		return
	}
	m.setStatus(ok, false)
}

func (m *Model) snapshotReference() launch.Reference {
	if m.tracker == nil {
		return m.ref
	}
	return m.tracker.Store().Snapshot().Reference
}

// Run starts the Bubble Tea program and blocks until the user leaves.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("ui: %w", context.Cause(opts.Context))
		}
		return fmt.Errorf("ui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.interrupted {
		return ErrInterrupted
	}
	return nil
}
