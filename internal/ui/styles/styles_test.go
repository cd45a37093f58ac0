// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme_SetsBackground(t *testing.T) {
	NewTheme(true)
	if !lipgloss.HasDarkBackground() {
		t.Error("NewTheme(true) should force a dark background")
	}

	theme := NewTheme(false)
	if lipgloss.HasDarkBackground() {
		t.Error("NewTheme(false) should force a light background")
	}
	if theme.IsDark {
		t.Error("IsDark should be false")
	}
}

func TestResolveDark(t *testing.T) {
	if !ResolveDark("dark") || !ResolveDark("DARK") {
		t.Error("dark should resolve to true")
	}
	if ResolveDark("light") {
		t.Error("light should resolve to false")
	}
	// auto asks the terminal; only check it does not panic.
	_ = ResolveDark("auto")
}

func TestThemeGlyph(t *testing.T) {
	if ThemeGlyph(true) == ThemeGlyph(false) {
		t.Error("dark and light glyphs should differ")
	}
}

func TestThemeStylesRender(t *testing.T) {
	theme := NewTheme(true)

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Navbar", theme.Navbar},
		{"StoryTitle", theme.StoryTitle},
		{"CommentEven", theme.CommentEven},
		{"ErrorBox", theme.ErrorBox},
		{"Footer", theme.Footer},
	}
	for _, s := range styles {
		if s.style.Render("test") == "" {
			t.Errorf("%s style should render", s.name)
		}
	}
}

func TestCommentBorderAlternates(t *testing.T) {
	theme := NewTheme(true)
	even := theme.CommentBorder(0).GetBorderLeftForeground()
	odd := theme.CommentBorder(1).GetBorderLeftForeground()
	if even == odd {
		t.Error("adjacent levels should use different border colors")
	}
	if theme.CommentBorder(2).GetBorderLeftForeground() != even {
		t.Error("levels of equal parity should share a border color")
	}
}

func TestSetWidth(t *testing.T) {
	theme := NewTheme(false)
	theme.SetWidth(80)
	if theme.Width != 80 || theme.Navbar.GetWidth() != 80 {
		t.Errorf("Width = %d, Navbar width = %d", theme.Width, theme.Navbar.GetWidth())
	}
}

func TestSpinnerConfigDuration(t *testing.T) {
	if got := LineSpinner.Duration(); got != 100*time.Millisecond {
		t.Errorf("Duration() = %v", got)
	}
	if got := (SpinnerConfig{}).Duration(); got != 100*time.Millisecond {
		t.Errorf("zero FPS Duration() = %v", got)
	}
}
