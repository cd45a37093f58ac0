// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reader

import (
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

const (
	// DefaultCommentLimit caps the top-level comments loaded for a story.
	DefaultCommentLimit = 30

	// DefaultAutoExpandDepth is the depth below which replies are shown
	// without asking.
	DefaultAutoExpandDepth = 2

	indentStep = 2
	maxIndent  = 8
)

// =============================================================================
// NODE
// =============================================================================

// Node is one comment in a thread.
type Node struct {
	Comment     hn.Comment
	Level       int
	Expanded    bool
	ShowReplies bool
	Loaded      bool
	Loading     bool
	Replies     []*Node
	Err         error

	autoDepth int
}

func newNode(c hn.Comment, level, autoDepth int) *Node {
	return &Node{
		Comment:     c,
		Level:       level,
		Expanded:    true,
		ShowReplies: level < autoDepth,
		autoDepth:   autoDepth,
	}
}

// ID is the comment id.
func (n *Node) ID() int {
	return n.Comment.ID
}

// HasReplies reports whether the comment has child comments.
func (n *Node) HasReplies() bool {
	return n.Comment.HasReplies()
}

// ToggleExpanded collapses or expands the body and reply control.
func (n *Node) ToggleExpanded() {
	n.Expanded = !n.Expanded
}

// ToggleReplies shows or hides the replies. It returns true when the
// replies must now be fetched.
func (n *Node) ToggleReplies() bool {
	if !n.HasReplies() {
		return false
	}
	n.ShowReplies = !n.ShowReplies
	return n.NeedsFetch()
}

// NeedsFetch reports whether replies are shown but not yet loaded.
func (n *Node) NeedsFetch() bool {
	return n.ShowReplies && n.HasReplies() && !n.Loaded && !n.Loading
}

// BeginFetch marks the replies as loading.
func (n *Node) BeginFetch() {
	n.Loading = true
	n.Err = nil
}

// SetReplies stores the fetched replies. Deleted and dead comments are
// dropped. On err the node keeps no replies and the error is kept for the
// caller to log.
func (n *Node) SetReplies(comments []hn.Comment, err error) {
	n.Loading = false
	n.Loaded = true
	if err != nil {
		n.Err = err
		n.Replies = nil
		return
	}
	n.Err = nil
	n.Replies = make([]*Node, 0, len(comments))
	for _, c := range hn.FilterVisible(comments) {
		n.Replies = append(n.Replies, newNode(c, n.Level+1, n.autoDepth))
	}
}

// ReplyLabel is the text of the reply toggle, e.g. "Show 3 replies".
func (n *Node) ReplyLabel() string {
	verb := "Show"
	if n.ShowReplies {
		verb = "Hide"
	}
	return verb + " " + util.Plural(len(n.Comment.Kids), "reply", "replies")
}

// Indent is the left margin in cells: two per level, at most eight.
func (n *Node) Indent() int {
	return min(n.Level*indentStep, maxIndent)
}

// =============================================================================
// THREAD
// =============================================================================

// Thread is the comment section of one story.
type Thread struct {
	Story   hn.Story
	Roots   []*Node
	Loading bool
	Loaded  bool
	Err     string

	limit     int
	autoDepth int
}

// NewThread creates the thread of story. A non-positive limit selects
// DefaultCommentLimit and a negative autoDepth DefaultAutoExpandDepth;
// autoDepth 0 never shows replies until asked.
func NewThread(story hn.Story, limit, autoDepth int) *Thread {
	if limit <= 0 {
		limit = DefaultCommentLimit
	}
	if autoDepth < 0 {
		autoDepth = DefaultAutoExpandDepth
	}
	return &Thread{Story: story, limit: limit, autoDepth: autoDepth}
}

// RootIDs are the top-level comment ids to fetch: the first limit kids.
func (t *Thread) RootIDs() []int {
	kids := t.Story.Kids
	if len(kids) > t.limit {
		kids = kids[:t.limit]
	}
	return kids
}

// Empty reports whether the story has no comments at all.
func (t *Thread) Empty() bool {
	return len(t.Story.Kids) == 0
}

// Begin marks the top-level comments as loading. It returns false when
// nothing needs to be fetched.
func (t *Thread) Begin() bool {
	if t.Empty() {
		t.Loaded = true
		return false
	}
	t.Loading = true
	t.Err = ""
	return true
}

// SetRoots stores the fetched top-level comments.
func (t *Thread) SetRoots(comments []hn.Comment, err error) {
	t.Loading = false
	t.Loaded = true
	if err != nil {
		t.Err = err.Error()
		t.Roots = nil
		return
	}
	t.Roots = make([]*Node, 0, len(comments))
	for _, c := range hn.FilterVisible(comments) {
		t.Roots = append(t.Roots, newNode(c, 0, t.autoDepth))
	}
}

// Visible flattens the tree into display order, skipping the replies of
// collapsed or hidden nodes.
func (t *Thread) Visible() []*Node {
	var rows []*Node
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			rows = append(rows, n)
			if n.Expanded && n.ShowReplies {
				walk(n.Replies)
			}
		}
	}
	walk(t.Roots)
	return rows
}

// Find returns the node for comment id anywhere in the loaded tree.
func (t *Thread) Find(id int) *Node {
	var find func([]*Node) *Node
	find = func(nodes []*Node) *Node {
		for _, n := range nodes {
			if n.ID() == id {
				return n
			}
			if m := find(n.Replies); m != nil {
				return m
			}
		}
		return nil
	}
	return find(t.Roots)
}

// PendingFetches lists visible nodes whose replies are shown but not yet
// loaded, in display order.
func (t *Thread) PendingFetches() []*Node {
	var out []*Node
	for _, n := range t.Visible() {
		if n.Expanded && n.NeedsFetch() {
			out = append(out, n)
		}
	}
	return out
}

// Count is the number of loaded comments in the tree.
func (t *Thread) Count() int {
	var count func([]*Node) int
	count = func(nodes []*Node) int {
		total := len(nodes)
		for _, n := range nodes {
			total += count(n.Replies)
		}
		return total
	}
	return count(t.Roots)
}
