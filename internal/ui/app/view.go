// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/components"
)

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		m.viewport.View(),
		m.renderBottom(),
	)
}

// =============================================================================
// CHROME
// =============================================================================

func (m *Model) renderNavbar() string {
	m.navbar.Feed = m.session.Feed
	m.navbar.Dark = m.session.Dark
	m.navbar.ShowTabs = m.session.Viewing == reader.ViewList
	return m.navbar.View()
}

func (m *Model) renderBottom() string {
	var parts []string
	if m.session.Viewing == reader.ViewList && len(m.session.Pager.IDs) > 0 {
		parts = append(parts, components.RenderPager(m.theme, m.session.Pager, m.width))
	}
	parts = append(parts, m.renderStatusBar())
	parts = append(parts, components.RenderFooter(m.theme, m.width))

	if m.session.Viewing == reader.ViewComments {
		parts = append(parts, m.help.View(threadKeys{m.keys}))
	} else {
		parts = append(parts, m.help.View(listKeys{m.keys}))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderStatusBar() string {
	bar := m.statusbar
	bar.Message = m.status
	bar.Status = components.StatusReady
	if m.loading() {
		bar.Status = components.StatusLoading
	}

	if m.session.Viewing == reader.ViewComments && m.thread != nil {
		bar.Mode = "Comments"
		bar.Info = ""
		if rows := len(m.rows()); rows > 0 {
			bar.Info = fmt.Sprintf("comment %d of %d", m.cursor+1, rows)
		}
		if m.thread.Err != "" {
			bar.Status = components.StatusError
		}
		return bar.View()
	}

	s := m.session
	bar.Mode = "Stories"
	bar.Info = fmt.Sprintf("%s · page %d of %d", s.Feed.Label(), s.Pager.Page+1, s.Pager.Pages())
	if s.Err != "" {
		bar.Status = components.StatusError
	}
	return bar.View()
}

// =============================================================================
// CONTENT
// =============================================================================

// refresh rebuilds the viewport content and keeps the selected row in
// view. It runs after every state change.
func (m *Model) refresh() {
	height := m.height - lipgloss.Height(m.renderNavbar()) - lipgloss.Height(m.renderBottom())
	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(height, 1)

	var content string
	var selected int
	if m.session.Viewing == reader.ViewComments && m.thread != nil {
		content = m.threadContent()
		selected = m.cursor
	} else {
		content = m.listContent()
		selected = m.session.Cursor
	}
	m.viewport.SetContent(content)
	m.scrollTo(selected)
}

// scrollTo adjusts the viewport so that row is visible.
func (m *Model) scrollTo(row int) {
	if row < 0 || row >= len(m.rowOffsets) {
		return
	}
	top := m.rowOffsets[row]
	bottom := m.viewport.TotalLineCount()
	if row+1 < len(m.rowOffsets) {
		bottom = m.rowOffsets[row+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(top, bottom-m.viewport.Height))
	}
}

// rowBuilder accumulates rendered blocks and remembers where each row
// starts.
type rowBuilder struct {
	b       strings.Builder
	lines   int
	offsets []int
}

func (r *rowBuilder) block(s string) {
	if r.lines > 0 {
		r.b.WriteString("\n")
	}
	r.b.WriteString(s)
	r.lines += lipgloss.Height(s)
}

func (r *rowBuilder) row(s string) {
	r.offsets = append(r.offsets, r.lines)
	r.block(s)
}

func (m *Model) listContent() string {
	var r rowBuilder
	s := m.session

	switch {
	case s.Err != "":
		r.block("")
		r.block(m.errorBox(s.Err, "Press R to retry"))
	case s.Loading && len(s.Stories) == 0:
		r.block("")
		r.block("  " + m.spinner.View())
	case s.Loading:
		r.block("  " + m.spinner.View())
	}

	if s.Err == "" {
		for i, story := range s.Stories {
			r.row(components.RenderStory(m.theme, story, s.Rank(i), i == s.Cursor, m.width))
		}
	}

	m.rowOffsets = r.offsets
	return r.b.String()
}

func (m *Model) threadContent() string {
	var r rowBuilder
	t := m.thread
	width := m.width

	r.block(components.RenderSectionHeader(m.theme, m.md, t.Story, width))

	switch {
	case t.Loading:
		r.block("")
		r.block(m.spinner.View())
	case t.Err != "":
		r.block("")
		r.block(m.errorBox(t.Err, "Press R to retry"))
	case t.Loaded && len(t.Roots) == 0:
		r.block("")
		r.block(components.NoComments(m.theme))
	}

	spin := m.spinner.Frame()
	for i, n := range t.Visible() {
		r.row(components.RenderComment(m.theme, m.md, n, i == m.cursor, width, spin))
	}

	m.rowOffsets = r.offsets
	return r.b.String()
}

func (m *Model) errorBox(msg, hint string) string {
	box := components.NewErrorBox(m.theme, msg).WithHint(hint)
	box.SetWidth(m.width)
	return box.View()
}
