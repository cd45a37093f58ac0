// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hn

import (
	"github.com/makwanadeepam/newhackernews/internal/util"
)

// Item is the raw record served by item/<id>.json. Stories, comments,
// jobs and polls all share this shape; absent fields decode to zero.
type Item struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by,omitempty"`
	Time        int64  `json:"time"`
	Text        string `json:"text,omitempty"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Score       int    `json:"score,omitempty"`
	Descendants int    `json:"descendants,omitempty"`
	Kids        []int  `json:"kids,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
	Dead        bool   `json:"dead,omitempty"`
}

// Story is a listing entry.
type Story struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Score       int    `json:"score"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Descendants int    `json:"descendants"`
	Kids        []int  `json:"kids,omitempty"`
	Type        string `json:"type"`
	// Text is the HTML body of Ask/Show posts.
	Text string `json:"text,omitempty"`
}

// Comment is one node of a discussion tree. Text is an HTML fragment.
type Comment struct {
	ID      int    `json:"id"`
	By      string `json:"by"`
	Text    string `json:"text"`
	Time    int64  `json:"time"`
	Kids    []int  `json:"kids,omitempty"`
	Parent  int    `json:"parent"`
	Deleted bool   `json:"deleted,omitempty"`
	Dead    bool   `json:"dead,omitempty"`
}

// Story converts the item to a Story.
func (it *Item) Story() Story {
	return Story{
		ID:          it.ID,
		Title:       it.Title,
		URL:         it.URL,
		Score:       it.Score,
		By:          it.By,
		Time:        it.Time,
		Descendants: it.Descendants,
		Kids:        it.Kids,
		Type:        it.Type,
		Text:        it.Text,
	}
}

// Comment converts the item to a Comment.
func (it *Item) Comment() Comment {
	return Comment{
		ID:      it.ID,
		By:      it.By,
		Text:    it.Text,
		Time:    it.Time,
		Kids:    it.Kids,
		Parent:  it.Parent,
		Deleted: it.Deleted,
		Dead:    it.Dead,
	}
}

// Domain is the host of the story URL without "www.", or "" for text posts.
func (s Story) Domain() string {
	return util.Domain(s.URL)
}

// HasURL reports whether the story links to an external page.
func (s Story) HasURL() bool {
	return s.URL != ""
}

// CommentCount is the total number of comments in the thread.
func (s Story) CommentCount() int {
	if s.Descendants < 0 {
		return 0
	}
	return s.Descendants
}

// Visible reports whether the comment should be rendered at all.
func (c Comment) Visible() bool {
	return !c.Deleted && !c.Dead
}

// HasReplies reports whether the comment has child comments.
func (c Comment) HasReplies() bool {
	return len(c.Kids) > 0
}

// FilterVisible returns the comments that are neither deleted nor dead,
// preserving order.
func FilterVisible(comments []Comment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}
