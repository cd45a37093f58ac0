// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetDark forces the variant every AdaptiveColor resolves to.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// ResolveDark maps a configured theme to dark (true) or light. "dark" and
// "light" are explicit; anything else follows the terminal background.
func ResolveDark(theme string) bool {
	switch strings.ToLower(theme) {
	case "dark":
		return true
	case "light":
		return false
	default:
		return termenv.HasDarkBackground()
	}
}

// ThemeGlyph is the navbar indicator: a sun in dark mode (switch to light)
// and a moon in light mode.
func ThemeGlyph(dark bool) string {
	if dark {
		return "☀"
	}
	return "☾"
}

// Theme holds all the styled components for the application.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width int

	// ==========================================================================
	// NAVBAR STYLES
	// ==========================================================================

	Navbar      lipgloss.Style
	Brand       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	ThemeToggle lipgloss.Style

	// ==========================================================================
	// STORY LIST STYLES
	// ==========================================================================

	StoryRow      lipgloss.Style
	StorySelected lipgloss.Style
	StoryRank     lipgloss.Style
	StoryScore    lipgloss.Style
	StoryTitle    lipgloss.Style
	StoryDomain   lipgloss.Style
	StoryMeta     lipgloss.Style

	// ==========================================================================
	// COMMENT STYLES
	// ==========================================================================

	SectionTitle   lipgloss.Style
	SectionMeta    lipgloss.Style
	SectionHeading lipgloss.Style
	CommentAuthor  lipgloss.Style
	CommentMeta    lipgloss.Style
	CommentBody    lipgloss.Style
	CommentEven    lipgloss.Style
	CommentOdd     lipgloss.Style
	CommentCursor  lipgloss.Style
	ReplyToggle    lipgloss.Style
	Chevron        lipgloss.Style

	// ==========================================================================
	// PAGER AND CHROME
	// ==========================================================================

	PagerButton   lipgloss.Style
	PagerDisabled lipgloss.Style
	PagerPage     lipgloss.Style
	Spinner       lipgloss.Style
	Muted         lipgloss.Style
	Footer        lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar     lipgloss.Style
	StatusMode    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTheme creates a theme for the given variant and applies it globally.
func NewTheme(dark bool) *Theme {
	SetDark(dark)
	t := &Theme{
		IsDark:       dark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// SetWidth records the terminal width for styles that fill it.
func (t *Theme) SetWidth(width int) {
	t.Width = width
	t.Navbar = t.Navbar.Width(width)
	t.Footer = t.Footer.Width(width)
}

func (t *Theme) initStyles() {
	// Navbar
	t.Navbar = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Brand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(BrandDeep).
		Background(BrandBg).
		Padding(0, 1)

	t.ThemeToggle = lipgloss.NewStyle().
		Foreground(Brand).
		Padding(0, 1)

	// Story list
	t.StoryRow = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Surface).
		PaddingLeft(1)

	t.StorySelected = t.StoryRow.
		BorderForeground(Brand).
		Background(BrandBg)

	t.StoryRank = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(4).
		Align(lipgloss.Right)

	t.StoryScore = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand)

	t.StoryTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.StoryDomain = lipgloss.NewStyle().
		Foreground(Link)

	t.StoryMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Comments
	t.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.SectionMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.SectionHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		MarginTop(1)

	t.CommentAuthor = lipgloss.NewStyle().
		Bold(true).
		Foreground(BrandDeep)

	t.CommentMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CommentBody = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CommentEven = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(BorderEven).
		PaddingLeft(1)

	t.CommentOdd = t.CommentEven.
		BorderForeground(BorderOdd)

	t.CommentCursor = t.CommentEven.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Brand)

	t.ReplyToggle = lipgloss.NewStyle().
		Foreground(Link).
		Underline(true)

	t.Chevron = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Pager and chrome
	t.PagerButton = lipgloss.NewStyle().
		Bold(true).
		Foreground(BrandDeep).
		Background(BrandBg).
		Padding(0, 1)

	t.PagerDisabled = lipgloss.NewStyle().
		Foreground(TextDisabled).
		Padding(0, 1)

	t.PagerPage = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Brand)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Align(lipgloss.Center)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(Brand)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim)

	t.StatusMode = lipgloss.NewStyle().
		Bold(true).
		Foreground(BrandBg).
		Background(Brand).
		Padding(0, 1)

	t.StatusInfo = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusMessage = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusError = lipgloss.NewStyle().
		Foreground(ErrorFg).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Error box
	t.ErrorBox = lipgloss.NewStyle().
		Foreground(ErrorFg).
		Background(ErrorBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ErrorBorder).
		Padding(0, 1)

	t.ErrorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ErrorFg)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(ErrorFg)
}

// CommentBorder returns the left-rule style for a comment at level,
// alternating by depth parity.
func (t *Theme) CommentBorder(level int) lipgloss.Style {
	if level%2 == 0 {
		return t.CommentEven
	}
	return t.CommentOdd
}
