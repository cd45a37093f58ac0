// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/components"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

// Options configures the root model.
type Options struct {
	// Fetcher serves listings and items (required).
	Fetcher Fetcher

	// Config supplies the feed, page size and thread settings
	// (default: config.Default()).
	Config *config.Config

	// ConfigPath is where the theme is persisted; empty disables saving.
	ConfigPath string

	// Dark selects the initial theme.
	Dark bool

	// PlainText renders comment bodies without glamour.
	PlainText bool

	// Logger receives fetch failures (default: no-op).
	Logger *zap.Logger

	// OpenURL opens a link in the browser (default: util.OpenURL).
	OpenURL func(string) error
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	fetch   Fetcher
	cfg     *config.Config
	cfgPath string
	log     *zap.Logger
	openURL func(string) error

	// View state
	session *reader.Session
	thread  *reader.Thread
	cursor  int // row of the comment cursor

	// Components
	theme     *styles.Theme
	navbar    *components.Navbar
	statusbar *components.StatusBar
	spinner   components.Spinner
	md        *components.Markdown
	viewport  viewport.Model
	help      help.Model
	keys      KeyMap

	// One theme save runs at a time; toggles during it are written after.
	savingTheme  bool
	themePending bool

	// rowOffsets maps list or comment rows to their first content line.
	rowOffsets []int

	width    int
	height   int
	ready    bool
	showHelp bool
	status   string

	initCmds []tea.Cmd
}

// New creates the root model and queues the first listing fetch.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	open := opts.OpenURL
	if open == nil {
		open = util.OpenURL
	}

	ctx, cancel := context.WithCancel(context.Background())
	theme := styles.NewTheme(opts.Dark)

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		fetch:     opts.Fetcher,
		cfg:       cfg,
		cfgPath:   opts.ConfigPath,
		log:       log,
		openURL:   open,
		session:   reader.NewSession(cfg.Feed(), cfg.UI.PageSize, opts.Dark),
		theme:     theme,
		navbar:    components.NewNavbar(theme),
		statusbar: components.NewStatusBar(theme),
		spinner:   components.NewSpinner(theme),
		viewport:  viewport.New(80, 20),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		width:     80,
		height:    24,
	}
	if !opts.PlainText {
		m.md = components.NewMarkdown()
	}
	m.applyHelpStyles()
	m.statusbar.SetWidth(m.width)

	seq := m.session.Reload()
	m.initCmds = []tea.Cmd{
		m.spinner.Start(),
		fetchStoryIDs(m.ctx, m.fetch, seq, m.session.Feed),
	}
	m.refresh()
	return m
}

// Init starts the first fetch and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

// Session exposes the view state, mainly for tests.
func (m Model) Session() *reader.Session {
	return m.session
}

// Thread is the open comment thread, or nil in the list view.
func (m Model) Thread() *reader.Thread {
	return m.thread
}

// Cursor is the selected comment row in the comments view.
func (m Model) Cursor() int {
	return m.cursor
}

// Status is the transient message shown above the help line.
func (m Model) Status() string {
	return m.status
}

// loading reports whether any fetch is in flight.
func (m *Model) loading() bool {
	if m.session.Loading {
		return true
	}
	if m.thread == nil {
		return false
	}
	if m.thread.Loading {
		return true
	}
	for _, n := range m.thread.Visible() {
		if n.Loading {
			return true
		}
	}
	return false
}

// setDark switches the theme variant everywhere.
func (m *Model) setDark(dark bool) {
	m.session.Dark = dark
	m.theme = styles.NewTheme(dark)
	m.theme.SetWidth(m.width)
	m.navbar.SetTheme(m.theme)
	m.statusbar.SetTheme(m.theme)
	m.spinner.SetTheme(m.theme)
	m.applyHelpStyles()
}

func (m *Model) applyHelpStyles() {
	m.help.Styles.ShortKey = m.theme.HelpKey
	m.help.Styles.ShortDesc = m.theme.HelpDesc
	m.help.Styles.FullKey = m.theme.HelpKey
	m.help.Styles.FullDesc = m.theme.HelpDesc
}
