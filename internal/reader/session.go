// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reader

import (
	"unicode"
	"unicode/utf8"

	"github.com/makwanadeepam/newhackernews/internal/hn"
)

// ErrFetchStories is the message shown when a listing fails without one
// of its own.
const ErrFetchStories = "Failed to fetch stories"

// View is the screen the session is showing.
type View int

const (
	ViewList View = iota
	ViewComments
)

func (v View) String() string {
	if v == ViewComments {
		return "comments"
	}
	return "list"
}

// Session is the root view state: feed, page, theme and current view.
type Session struct {
	Feed     hn.Feed
	Pager    *Pager
	Dark     bool
	Viewing  View
	Selected *hn.Story
	Stories  []hn.Story
	Cursor   int
	Loading  bool
	Err      string

	// Seq identifies the latest listing request.
	Seq uint64
}

// NewSession creates a session on the given feed.
func NewSession(feed hn.Feed, perPage int, dark bool) *Session {
	if feed == "" {
		feed = hn.FeedTop
	}
	return &Session{
		Feed:  feed,
		Pager: NewPager(perPage),
		Dark:  dark,
	}
}

// begin starts a listing request and returns its sequence number.
func (s *Session) begin() uint64 {
	s.Seq++
	s.Loading = true
	s.Err = ""
	return s.Seq
}

// Current reports whether seq belongs to the latest listing request.
func (s *Session) Current(seq uint64) bool {
	return seq == s.Seq
}

// Reload restarts the listing of the current feed from the first page.
func (s *Session) Reload() uint64 {
	s.Pager.Reset(nil)
	s.Stories = nil
	s.Cursor = 0
	return s.begin()
}

// SetFeed switches to feed f: the ids are reloaded and the page resets to
// the first one. The returned sequence number tags the fetch.
func (s *Session) SetFeed(f hn.Feed) uint64 {
	s.Feed = f
	s.Viewing = ViewList
	s.Selected = nil
	return s.Reload()
}

// Home returns to the first page of the top feed and leaves the
// comments view.
func (s *Session) Home() uint64 {
	return s.SetFeed(hn.FeedTop)
}

// NextPage moves to the following page. ok is false when there is none
// or a request is already loading.
func (s *Session) NextPage() (seq uint64, ok bool) {
	if s.Loading || !s.Pager.Next() {
		return 0, false
	}
	s.Cursor = 0
	return s.begin(), true
}

// PrevPage moves to the previous page.
func (s *Session) PrevPage() (seq uint64, ok bool) {
	if s.Loading || !s.Pager.Prev() {
		return 0, false
	}
	s.Cursor = 0
	return s.begin(), true
}

// ApplyIDs stores the listing fetched by request seq. It reports false
// for stale results.
func (s *Session) ApplyIDs(seq uint64, ids []int) bool {
	if !s.Current(seq) {
		return false
	}
	page := s.Pager.Page
	s.Pager.Reset(ids)
	s.Pager.Goto(page)
	return true
}

// ApplyStories stores the stories of the current page fetched by request
// seq. A non-nil err replaces the list with the error's message, e.g.
// "Failed to fetch story 123". It reports false for stale results.
func (s *Session) ApplyStories(seq uint64, stories []hn.Story, err error) bool {
	if !s.Current(seq) {
		return false
	}
	s.Loading = false
	if err != nil {
		s.Err = errorMessage(err)
		s.Stories = nil
		s.Cursor = 0
		return true
	}
	s.Err = ""
	s.Stories = stories
	s.Cursor = max(0, min(s.Cursor, len(stories)-1))
	return true
}

// MoveCursor moves the list selection by delta, clamped to the page.
func (s *Session) MoveCursor(delta int) {
	if len(s.Stories) == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = max(0, min(s.Cursor+delta, len(s.Stories)-1))
}

// CursorStory returns the story under the cursor, or nil.
func (s *Session) CursorStory() *hn.Story {
	if s.Cursor < 0 || s.Cursor >= len(s.Stories) {
		return nil
	}
	return &s.Stories[s.Cursor]
}

// Rank is the 1-based listing position of the i-th story of the page.
func (s *Session) Rank(i int) int {
	return s.Pager.Offset() + i + 1
}

// OpenComments switches to the comments view of story.
func (s *Session) OpenComments(story hn.Story) {
	s.Selected = &story
	s.Viewing = ViewComments
}

// Back leaves the comments view.
func (s *Session) Back() {
	s.Selected = nil
	s.Viewing = ViewList
}

// ToggleTheme flips between dark and light and returns the new value.
func (s *Session) ToggleTheme() bool {
	s.Dark = !s.Dark
	return s.Dark
}

// errorMessage is err's text with the first letter capitalized.
func errorMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return ErrFetchStories
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
