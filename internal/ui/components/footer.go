// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/makwanadeepam/newhackernews/internal/ui/styles"

// FooterText is the closing line of every view.
const FooterText = "Modern HackerNews UI"

// RenderFooter renders the footer across width.
func RenderFooter(theme *styles.Theme, width int) string {
	return theme.Footer.Width(max(width, 0)).Render(FooterText)
}
