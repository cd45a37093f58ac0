// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

// =============================================================================
// STORY ITEM
// =============================================================================

// RenderStory renders one listing entry on two lines:
//
//	 12. Title of the story (example.com)
//	     123 points · by alice · 3 hours ago · 45 comments
func RenderStory(theme *styles.Theme, story hn.Story, rank int, selected bool, width int) string {
	rankStr := theme.StoryRank.Render(strconv.Itoa(rank) + ".")
	indent := padRight("", 5)

	domain := ""
	if d := story.Domain(); d != "" {
		domain = " (" + d + ")"
	}

	// Row border and padding take two cells, the rank column five.
	room := max(width-2-5, 10)
	title := util.Truncate(story.Title, max(room-util.Width(domain), 5))

	line1 := rankStr + " " + theme.StoryTitle.Render(title)
	if domain != "" {
		line1 += theme.StoryDomain.Render(domain)
	}

	meta := joinMeta(
		theme.StoryScore.Render(points(story.Score)),
		theme.StoryMeta.Render("by "+story.By),
		theme.StoryMeta.Render(util.TimeAgo(story.Time)),
		theme.StoryMeta.Render(util.Plural(story.CommentCount(), "comment", "comments")),
	)
	line2 := indent + meta

	style := theme.StoryRow
	if selected {
		style = theme.StorySelected
	}
	// Width excludes the left border.
	return style.Width(max(width-1, 0)).Render(line1 + "\n" + line2)
}
