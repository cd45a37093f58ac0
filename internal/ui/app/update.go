// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading() {
			m.spinner.Stop()
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case StoryIDsMsg:
		return m.handleStoryIDs(msg)

	case PageMsg:
		return m.handlePage(msg)

	case CommentsMsg:
		return m.handleComments(msg)

	case RepliesMsg:
		return m.handleReplies(msg)

	case ThemeSavedMsg:
		return m.handleThemeSaved(msg)

	case URLOpenedMsg:
		if msg.Err != nil {
			m.log.Warn("failed to open url", zap.String("url", msg.URL), zap.Error(msg.Err))
			m.status = "Could not open " + msg.URL
		} else {
			m.status = "Opened " + msg.URL
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.theme.SetWidth(m.width)
	m.navbar.SetWidth(m.width)
	m.statusbar.SetWidth(m.width)
	m.help.Width = m.width
	m.refresh()
	return m, nil
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Home):
		return m.loadListing(m.session.Home())

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.session.Viewing == reader.ViewComments {
		return m.handleThreadKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.session.MoveCursor(-1)
		m.refresh()

	case key.Matches(msg, m.keys.Down):
		m.session.MoveCursor(1)
		m.refresh()

	case key.Matches(msg, m.keys.Open):
		if s := m.session.CursorStory(); s != nil {
			return m.openComments(*s)
		}

	case key.Matches(msg, m.keys.Browser):
		if s := m.session.CursorStory(); s != nil {
			if !s.HasURL() {
				return m.openComments(*s)
			}
			return m, openURL(m.openURL, s.URL)
		}

	case key.Matches(msg, m.keys.NextPage):
		if seq, ok := m.session.NextPage(); ok {
			return m.loadPage(seq)
		}

	case key.Matches(msg, m.keys.PrevPage):
		if seq, ok := m.session.PrevPage(); ok {
			return m.loadPage(seq)
		}

	case key.Matches(msg, m.keys.Feed):
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(hn.Feeds) {
			return m.loadListing(m.session.SetFeed(hn.Feeds[i]))
		}

	case key.Matches(msg, m.keys.NextFeed):
		return m.loadListing(m.session.SetFeed(hn.NextFeed(m.session.Feed)))

	case key.Matches(msg, m.keys.Reload):
		return m.loadListing(m.session.Reload())
	}
	return m, nil
}

func (m Model) handleThreadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.session.Back()
		m.thread = nil
		m.cursor = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
		m.refresh()

	case key.Matches(msg, m.keys.Down):
		m.cursor = max(min(m.cursor+1, len(rows)-1), 0)
		m.refresh()

	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Toggle):
		if n := m.cursorNode(); n != nil {
			n.ToggleExpanded()
			m.clampCursor()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Replies):
		if n := m.cursorNode(); n != nil && n.Expanded {
			if n.ToggleReplies() {
				n.BeginFetch()
				m.refresh()
				return m, tea.Batch(fetchReplies(m.ctx, m.fetch, m.thread, n), m.spinner.Start())
			}
			m.clampCursor()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Browser):
		if s := m.thread.Story; s.HasURL() {
			return m, openURL(m.openURL, s.URL)
		}

	case key.Matches(msg, m.keys.Reload):
		return m.openComments(m.thread.Story)
	}
	return m, nil
}

// =============================================================================
// LISTING
// =============================================================================

// loadListing starts fetching the ids of the current feed.
func (m Model) loadListing(seq uint64) (tea.Model, tea.Cmd) {
	m.thread = nil
	m.cursor = 0
	m.refresh()
	return m, tea.Batch(fetchStoryIDs(m.ctx, m.fetch, seq, m.session.Feed), m.spinner.Start())
}

// loadPage starts fetching the stories of the current page.
func (m Model) loadPage(seq uint64) (tea.Model, tea.Cmd) {
	m.viewport.GotoTop()
	m.refresh()
	return m, tea.Batch(fetchPage(m.ctx, m.fetch, seq, m.session.Pager.Slice()), m.spinner.Start())
}

func (m Model) handleStoryIDs(msg StoryIDsMsg) (tea.Model, tea.Cmd) {
	if !m.session.Current(msg.Seq) {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn("failed to fetch story ids", zap.String("feed", string(msg.Feed)), zap.Error(msg.Err))
		m.session.ApplyStories(msg.Seq, nil, msg.Err)
		m.refresh()
		return m, nil
	}
	m.session.ApplyIDs(msg.Seq, msg.IDs)
	return m.loadPage(msg.Seq)
}

func (m Model) handlePage(msg PageMsg) (tea.Model, tea.Cmd) {
	if !m.session.Current(msg.Seq) {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn("failed to fetch stories", zap.Int("page", m.session.Pager.Page), zap.Error(msg.Err))
	}
	m.session.ApplyStories(msg.Seq, msg.Stories, msg.Err)
	m.refresh()
	return m, nil
}

// =============================================================================
// THREAD
// =============================================================================

// openComments switches to the comments view of story and starts loading
// its top-level comments.
func (m Model) openComments(story hn.Story) (tea.Model, tea.Cmd) {
	m.session.OpenComments(story)
	m.thread = reader.NewThread(story, m.cfg.UI.CommentLimit, m.cfg.UI.AutoExpandDepth)
	m.cursor = 0
	m.viewport.GotoTop()

	if !m.thread.Begin() {
		m.refresh()
		return m, nil
	}
	m.refresh()
	return m, tea.Batch(fetchComments(m.ctx, m.fetch, m.thread), m.spinner.Start())
}

func (m Model) handleComments(msg CommentsMsg) (tea.Model, tea.Cmd) {
	if msg.Thread != m.thread {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn("failed to fetch comments", zap.Int("story", msg.Thread.Story.ID), zap.Error(msg.Err))
	}
	m.thread.SetRoots(msg.Comments, msg.Err)
	return m, m.expandPending()
}

func (m Model) handleReplies(msg RepliesMsg) (tea.Model, tea.Cmd) {
	if msg.Thread != m.thread {
		return m, nil
	}
	n := m.thread.Find(msg.ParentID)
	if n == nil {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn("failed to fetch replies", zap.Int("comment", msg.ParentID), zap.Error(msg.Err))
	}
	n.SetReplies(msg.Comments, msg.Err)
	return m, m.expandPending()
}

// expandPending fetches the replies of every visible node that shows
// replies it has not loaded, which drives the automatic expansion of the
// first levels.
func (m *Model) expandPending() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.thread.PendingFetches() {
		n.BeginFetch()
		cmds = append(cmds, fetchReplies(m.ctx, m.fetch, m.thread, n))
	}
	if len(cmds) > 0 {
		cmds = append(cmds, m.spinner.Start())
	}
	m.clampCursor()
	m.refresh()
	return tea.Batch(cmds...)
}

func (m *Model) rows() []*reader.Node {
	if m.thread == nil {
		return nil
	}
	return m.thread.Visible()
}

func (m *Model) cursorNode() *reader.Node {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

func (m *Model) clampCursor() {
	m.cursor = max(min(m.cursor, len(m.rows())-1), 0)
}

// =============================================================================
// THEME AND CONFIG
// =============================================================================

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	dark := m.session.ToggleTheme()
	m.setDark(dark)
	m.cfg.SetDark(dark)
	m.refresh()
	if m.cfgPath == "" {
		return m, nil
	}
	if m.savingTheme {
		m.themePending = true
		return m, nil
	}
	m.savingTheme = true
	return m, saveTheme(m.cfgPath, dark)
}

func (m Model) handleThemeSaved(msg ThemeSavedMsg) (tea.Model, tea.Cmd) {
	m.savingTheme = false
	if msg.Err != nil {
		m.log.Warn("failed to save theme", zap.Error(msg.Err))
		m.status = "Could not save theme: " + msg.Err.Error()
	}
	if !m.themePending {
		return m, nil
	}
	m.themePending = false
	if msg.Dark == m.session.Dark && msg.Err == nil {
		return m, nil
	}
	m.savingTheme = true
	return m, saveTheme(m.cfgPath, m.session.Dark)
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	// The file may hold a value from before the latest toggle until our
	// own save lands.
	if m.savingTheme {
		cfg := *msg.Config
		cfg.SetDark(m.session.Dark)
		m.cfg = &cfg
		return m, nil
	}
	m.cfg = msg.Config
	// Querying the terminal for "auto" would race the program for stdin.
	if msg.Config.UI.Theme == config.ThemeAuto {
		return m, nil
	}
	if dark := styles.ResolveDark(msg.Config.UI.Theme); dark != m.session.Dark {
		m.log.Info("theme changed on disk", zap.String("theme", msg.Config.UI.Theme))
		m.setDark(dark)
		m.refresh()
	}
	return m, nil
}
