// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// RenderPager renders "Previous  Page N  Next" centered in width, dimming
// the buttons that cannot be used.
func RenderPager(theme *styles.Theme, p *reader.Pager, width int) string {
	prev := theme.PagerDisabled.Render("< Previous")
	if p.HasPrev() {
		prev = theme.PagerButton.Render("< Previous")
	}
	next := theme.PagerDisabled.Render("Next >")
	if p.HasNext() {
		next = theme.PagerButton.Render("Next >")
	}
	page := theme.PagerPage.Render("Page " + strconv.Itoa(p.Page+1))

	bar := lipgloss.JoinHorizontal(lipgloss.Center, prev, page, next)
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(bar)), lipgloss.Center, bar)
}
