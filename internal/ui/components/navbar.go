// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// =============================================================================
// NAVBAR COMPONENT
// =============================================================================

// Brand is the title shown at the left of the navbar.
const Brand = "HackerNews"

// Navbar is the top bar: brand, feed tabs and theme indicator. It is
// purely presentational; the root model handles the keys.
type Navbar struct {
	Feed     hn.Feed
	ShowTabs bool
	Dark     bool
	Width    int
	theme    *styles.Theme
}

// NewNavbar creates a navbar on the top feed.
func NewNavbar(theme *styles.Theme) *Navbar {
	return &Navbar{
		Feed:     hn.FeedTop,
		ShowTabs: true,
		Width:    80,
		theme:    theme,
	}
}

// SetTheme swaps the theme after a dark/light toggle.
func (n *Navbar) SetTheme(theme *styles.Theme) {
	n.theme = theme
}

// SetWidth updates the navbar width.
func (n *Navbar) SetWidth(width int) {
	n.Width = width
}

// Tabs renders the feed tabs with the active one highlighted.
func (n *Navbar) Tabs() string {
	tabs := make([]string, 0, len(hn.Feeds))
	for _, f := range hn.Feeds {
		style := n.theme.Tab
		if f == n.Feed {
			style = n.theme.TabActive
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	return strings.Join(tabs, "")
}

// View renders the navbar.
func (n *Navbar) View() string {
	left := n.theme.Brand.Render(Brand)
	if n.ShowTabs {
		left += "  " + n.Tabs()
	}
	right := n.theme.ThemeToggle.Render(styles.ThemeGlyph(n.Dark))

	// Navbar padding is one cell on each side.
	inner := max(n.Width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Narrow terminal: drop the tabs before the indicator.
		left = n.theme.Brand.Render(Brand)
		gap = max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	line := left + strings.Repeat(" ", gap) + right
	return n.theme.Navbar.Width(n.Width).Render(line)
}
