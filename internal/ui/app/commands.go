// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
)

// Fetcher is the part of the API client the reader needs.
type Fetcher interface {
	StoryIDs(ctx context.Context, feed hn.Feed) ([]int, error)
	Stories(ctx context.Context, ids []int) ([]hn.Story, error)
	Comments(ctx context.Context, ids []int) ([]hn.Comment, error)
}

// =============================================================================
// FETCH COMMANDS
// =============================================================================

// fetchStoryIDs loads the listing of feed for request seq.
func fetchStoryIDs(ctx context.Context, f Fetcher, seq uint64, feed hn.Feed) tea.Cmd {
	return func() tea.Msg {
		ids, err := f.StoryIDs(ctx, feed)
		return StoryIDsMsg{Seq: seq, Feed: feed, IDs: ids, Err: err}
	}
}

// fetchPage loads the stories of one page for request seq.
func fetchPage(ctx context.Context, f Fetcher, seq uint64, ids []int) tea.Cmd {
	// The pager may be reset before the command runs.
	ids = append([]int(nil), ids...)
	return func() tea.Msg {
		stories, err := f.Stories(ctx, ids)
		return PageMsg{Seq: seq, Stories: stories, Err: err}
	}
}

// fetchComments loads the top-level comments of thread.
func fetchComments(ctx context.Context, f Fetcher, thread *reader.Thread) tea.Cmd {
	ids := thread.RootIDs()
	return func() tea.Msg {
		comments, err := f.Comments(ctx, ids)
		return CommentsMsg{Thread: thread, Comments: comments, Err: err}
	}
}

// fetchReplies loads the replies of node.
func fetchReplies(ctx context.Context, f Fetcher, thread *reader.Thread, node *reader.Node) tea.Cmd {
	id := node.ID()
	kids := append([]int(nil), node.Comment.Kids...)
	return func() tea.Msg {
		comments, err := f.Comments(ctx, kids)
		return RepliesMsg{Thread: thread, ParentID: id, Comments: comments, Err: err}
	}
}

// =============================================================================
// SIDE EFFECTS
// =============================================================================

// saveTheme persists the theme into the config file at path, preserving
// whatever else the file holds.
func saveTheme(path string, dark bool) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadFileOnly(path)
		if err != nil {
			return ThemeSavedMsg{Dark: dark, Err: err}
		}
		cfg.SetDark(dark)
		return ThemeSavedMsg{Dark: dark, Err: config.SaveTo(cfg, path)}
	}
}

// openURL opens target with open.
func openURL(open func(string) error, target string) tea.Cmd {
	return func() tea.Msg {
		return URLOpenedMsg{URL: target, Err: open(target)}
	}
}
