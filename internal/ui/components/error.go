// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// =============================================================================
// ERROR BOX
// =============================================================================

// ErrorBox renders a failure as a bordered "Error: <message>" box.
type ErrorBox struct {
	Message string
	Hint    string
	width   int
	theme   *styles.Theme
}

// NewErrorBox creates an error box for message.
func NewErrorBox(theme *styles.Theme, message string) ErrorBox {
	return ErrorBox{Message: message, theme: theme, width: 60}
}

// WithHint adds a muted line under the message, such as a retry key.
func (e ErrorBox) WithHint(hint string) ErrorBox {
	e.Hint = hint
	return e
}

// SetWidth sets the available width.
func (e *ErrorBox) SetWidth(width int) {
	e.width = width
}

// View renders the box, or "" when there is no message.
func (e ErrorBox) View() string {
	if e.Message == "" {
		return ""
	}
	// Width covers the padding but not the border.
	inner := max(min(e.width, 80)-2, 20)

	var b strings.Builder
	b.WriteString(e.theme.ErrorTitle.Render("Error: "))
	b.WriteString(e.theme.ErrorMessage.Render(e.Message))
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.theme.Muted.Render(e.Hint))
	}
	return e.theme.ErrorBox.Width(inner).Render(b.String())
}
