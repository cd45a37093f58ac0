// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

const (
	chevronOpen   = "▾"
	chevronClosed = "▸"
)

// =============================================================================
// COMMENT SECTION HEADER
// =============================================================================

// RenderSectionHeader renders the story above its comments: title, link,
// points, author, age and the "Comments" heading.
func RenderSectionHeader(theme *styles.Theme, md *Markdown, story hn.Story, width int) string {
	var b strings.Builder

	b.WriteString(theme.SectionTitle.Width(width).Render(story.Title))
	b.WriteString("\n")
	if story.HasURL() {
		b.WriteString(theme.StoryDomain.Render(story.Domain()))
		b.WriteString(theme.Muted.Render("  " + util.Truncate(story.URL, max(width-util.Width(story.Domain())-2, 10))))
		b.WriteString("\n")
	}
	b.WriteString(joinMeta(
		theme.StoryScore.Render(points(story.Score)),
		theme.SectionMeta.Render("by "+story.By),
		theme.SectionMeta.Render(util.TimeAgo(story.Time)),
		theme.SectionMeta.Render(util.Plural(story.CommentCount(), "comment", "comments")),
	))

	if story.Text != "" {
		b.WriteString("\n\n")
		b.WriteString(renderBody(theme, md, story.Text, width))
	}

	b.WriteString("\n")
	b.WriteString(theme.SectionHeading.Width(width).Render("Comments"))
	return b.String()
}

// NoComments is shown when a story has no comments.
func NoComments(theme *styles.Theme) string {
	return theme.Muted.Render("No comments yet.")
}

// =============================================================================
// COMMENT
// =============================================================================

// RenderComment renders one comment: header, body and reply toggle. The
// left rule alternates color by depth and the block is indented by
// node.Indent(). Replies are separate rows rendered by the caller.
func RenderComment(theme *styles.Theme, md *Markdown, node *reader.Node, cursor bool, width int, spin string) string {
	indent := node.Indent()
	// Border and padding take two cells.
	inner := max(width-indent-2, 20)

	chevron := chevronOpen
	if !node.Expanded {
		chevron = chevronClosed
	}
	header := theme.Chevron.Render(chevron) + " " +
		theme.CommentAuthor.Render(node.Comment.By) + " " +
		theme.CommentMeta.Render(util.TimeAgo(node.Comment.Time))

	parts := []string{header}
	if node.Expanded {
		if body := renderBody(theme, md, node.Comment.Text, inner); body != "" {
			parts = append(parts, body)
		}
		if node.HasReplies() {
			toggle := theme.ReplyToggle.Render(node.ReplyLabel())
			if node.Loading && node.ShowReplies {
				toggle += " " + spin
			}
			parts = append(parts, toggle)
		}
	}

	style := theme.CommentBorder(node.Level)
	if cursor {
		style = theme.CommentCursor
	}
	block := style.Width(inner + 1).Render(strings.Join(parts, "\n"))
	return lipgloss.NewStyle().MarginLeft(indent).Render(block)
}

// renderBody converts an HTML body for display, through glamour when a
// renderer is available.
func renderBody(theme *styles.Theme, md *Markdown, html string, width int) string {
	if html == "" {
		return ""
	}
	if md != nil {
		if out, err := md.Render(hn.Markdown(html), width, theme.IsDark); err == nil {
			return out
		}
	}
	return theme.CommentBody.Width(width).Render(hn.PlainText(html))
}
