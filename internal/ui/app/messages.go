// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
)

// =============================================================================
// LISTING MESSAGES
// =============================================================================

// StoryIDsMsg delivers the ids of a feed for listing request Seq.
type StoryIDsMsg struct {
	Seq  uint64
	Feed hn.Feed
	IDs  []int
	Err  error
}

// PageMsg delivers the stories of one page for listing request Seq.
type PageMsg struct {
	Seq     uint64
	Stories []hn.Story
	Err     error
}

// =============================================================================
// THREAD MESSAGES
// =============================================================================

// CommentsMsg delivers the top-level comments of Thread.
type CommentsMsg struct {
	Thread   *reader.Thread
	Comments []hn.Comment
	Err      error
}

// RepliesMsg delivers the replies of comment ParentID in Thread.
type RepliesMsg struct {
	Thread   *reader.Thread
	ParentID int
	Comments []hn.Comment
	Err      error
}

// =============================================================================
// SIDE EFFECT MESSAGES
// =============================================================================

// ThemeSavedMsg reports the result of persisting the theme.
type ThemeSavedMsg struct {
	Dark bool
	Err  error
}

// URLOpenedMsg reports the result of opening a story in the browser.
type URLOpenedMsg struct {
	URL string
	Err error
}

// ConfigReloadedMsg is sent from outside the program when the config file
// changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
