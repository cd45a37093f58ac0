// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents what the reader is doing.
type Status int

const (
	StatusReady Status = iota
	StatusLoading
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the one-line bar above the footer. The left side names the
// view and position, the right side shows the status or a transient
// message.
type StatusBar struct {
	Mode    string
	Info    string
	Status  Status
	Message string

	width int
	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme}
}

// SetTheme switches the theme variant.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the bar.
func (s *StatusBar) View() string {
	t := s.theme
	left := t.StatusMode.Render(s.Mode)
	if s.Info != "" {
		left += t.StatusInfo.Render(s.Info)
	}

	var right string
	switch {
	case s.Status == StatusError && s.Message != "":
		right = t.StatusError.Render(s.Message)
	case s.Message != "":
		right = t.StatusMessage.Render(s.Message)
	case s.Status != StatusReady:
		right = t.StatusMessage.Render(s.Status.String())
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 && right != "" {
		// Shorten the message first; the position matters more.
		avail := s.width - lipgloss.Width(left) - 3
		if avail < 4 {
			right = ""
		} else {
			style := t.StatusMessage
			if s.Status == StatusError {
				style = t.StatusError
			}
			right = style.Render(util.Truncate(s.Message+s.statusFallback(), avail))
		}
		gap = s.width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if gap < 0 {
		return lipgloss.NewStyle().MaxWidth(max(s.width, 0)).Render(left)
	}
	return left + t.StatusBar.Render(strings.Repeat(" ", gap)) + right
}

func (s *StatusBar) statusFallback() string {
	if s.Message != "" || s.Status == StatusReady {
		return ""
	}
	return s.Status.String()
}
