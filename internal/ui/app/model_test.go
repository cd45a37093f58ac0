// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
)

// =============================================================================
// FAKE FETCHER
// =============================================================================

type fakeFetcher struct {
	mu       sync.Mutex
	feeds    map[hn.Feed][]int
	items    map[int]hn.Item
	failFeed bool
	fail     map[int]bool
	comments []int // ids requested through Comments, in order
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		feeds: map[hn.Feed][]int{},
		items: map[int]hn.Item{},
		fail:  map[int]bool{},
	}
}

func (f *fakeFetcher) addStories(feed hn.Feed, n int) {
	ids := make([]int, n)
	for i := range ids {
		id := int(feedBase(feed)) + i + 1
		ids[i] = id
		f.items[id] = hn.Item{ID: id, Type: "story", Title: fmt.Sprintf("%s story %d", feed, i+1), By: "pg", Score: i}
	}
	f.feeds[feed] = ids
}

func feedBase(feed hn.Feed) int {
	return (feed.Index() + 1) * 1000
}

func (f *fakeFetcher) StoryIDs(ctx context.Context, feed hn.Feed) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFeed {
		return nil, errors.New("failed to fetch stories (HTTP 500)")
	}
	return f.feeds[feed], nil
}

func (f *fakeFetcher) Stories(ctx context.Context, ids []int) ([]hn.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]hn.Story, 0, len(ids))
	for _, id := range ids {
		if f.fail[id] {
			return nil, fmt.Errorf("failed to fetch story %d", id)
		}
		if it, ok := f.items[id]; ok {
			out = append(out, it.Story())
		}
	}
	return out, nil
}

func (f *fakeFetcher) Comments(ctx context.Context, ids []int) ([]hn.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]hn.Comment, 0, len(ids))
	for _, id := range ids {
		f.comments = append(f.comments, id)
		if f.fail[id] {
			return nil, fmt.Errorf("failed to fetch comment %d", id)
		}
		if it, ok := f.items[id]; ok {
			if c := it.Comment(); c.Visible() {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeFetcher) requested(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.comments {
		if c == id {
			return true
		}
	}
	return false
}

// addThread gives story 1001 this tree:
//
//	10 (kids 11, 12)
//	  11 (kids 13)
//	    13 (kids 14)
//	  12
//	20 (deleted)
func (f *fakeFetcher) addThread() {
	story := f.items[1001]
	story.Kids = []int{10, 20}
	story.Descendants = 5
	f.items[1001] = story

	f.items[10] = hn.Item{ID: 10, Type: "comment", By: "alice", Text: "root comment", Kids: []int{11, 12}}
	f.items[11] = hn.Item{ID: 11, Type: "comment", By: "bob", Text: "first reply", Kids: []int{13}}
	f.items[12] = hn.Item{ID: 12, Type: "comment", By: "carol", Text: "second reply"}
	f.items[13] = hn.Item{ID: 13, Type: "comment", By: "dave", Text: "deep reply", Kids: []int{14}}
	f.items[14] = hn.Item{ID: 14, Type: "comment", By: "erin", Text: "deepest"}
	f.items[20] = hn.Item{ID: 20, Type: "comment", Deleted: true}
}

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T, f *fakeFetcher, mutate ...func(*Options)) Model {
	t.Helper()
	opts := Options{Fetcher: f, PlainText: true}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := New(opts)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return drain(t, m, m.Init())
}

// step feeds one message through Update.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// drain runs cmd and every command it produces, feeding the messages back
// through Update. Spinner ticks and quit are ignored.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 1000, "command loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, tea.QuitMsg, nil:
		default:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m
}

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

// =============================================================================
// LISTING TESTS
// =============================================================================

func TestInitLoadsFirstPage(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 45)

	m := newTestModel(t, f)
	s := m.Session()

	assert.False(t, s.Loading)
	assert.Len(t, s.Pager.IDs, 45)
	assert.Len(t, s.Stories, 20)
	assert.Equal(t, "top story 1", s.Stories[0].Title)

	view := m.View()
	for _, want := range []string{"HackerNews", "top story 1", "Page 1", "Modern HackerNews UI"} {
		assert.Contains(t, view, want)
	}
}

func TestPaging(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 45)
	m := newTestModel(t, f)

	m = press(t, m, "p")
	assert.Equal(t, 0, m.Session().Pager.Page, "no page before the first")

	m = press(t, m, "n")
	assert.Equal(t, 1, m.Session().Pager.Page)
	assert.Equal(t, "top story 21", m.Session().Stories[0].Title)
	assert.Contains(t, m.View(), "21.")
	assert.Contains(t, m.View(), "Top · page 2 of 3")

	m = press(t, m, "n")
	m = press(t, m, "n")
	assert.Equal(t, 2, m.Session().Pager.Page)
	assert.Len(t, m.Session().Stories, 5)

	m = press(t, m, "p")
	assert.Equal(t, 1, m.Session().Pager.Page)
}

func TestFeedSwitchResetsPage(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 45)
	f.addStories(hn.FeedBest, 3)
	f.addStories(hn.FeedNew, 3)
	m := newTestModel(t, f)

	m = press(t, m, "n")
	m = press(t, m, "3")
	assert.Equal(t, hn.FeedBest, m.Session().Feed)
	assert.Equal(t, 0, m.Session().Pager.Page)
	assert.Equal(t, "best story 1", m.Session().Stories[0].Title)

	m = press(t, m, "tab")
	assert.Equal(t, hn.FeedAsk, m.Session().Feed)
	assert.Empty(t, m.Session().Stories)

	m = press(t, m, "h")
	assert.Equal(t, hn.FeedTop, m.Session().Feed)
	assert.Len(t, m.Session().Stories, 20)
}

func TestStaleResultsAreDropped(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 5)
	m := newTestModel(t, f)

	old := m.Session().Seq
	// Start a new request without running it.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	m = next.(Model)
	require.True(t, m.Session().Loading)

	m = step(t, m, PageMsg{Seq: old, Stories: []hn.Story{{ID: 99, Title: "stale"}}})
	assert.True(t, m.Session().Loading, "stale page must not finish the new request")
	assert.NotContains(t, m.View(), "stale")

	m = step(t, m, StoryIDsMsg{Seq: old, IDs: []int{1, 2, 3}})
	assert.Empty(t, m.Session().Pager.IDs)
}

func TestListingError(t *testing.T) {
	f := newFakeFetcher()
	f.failFeed = true
	m := newTestModel(t, f)

	assert.Equal(t, "Failed to fetch stories (HTTP 500)", m.Session().Err)
	assert.Contains(t, m.View(), "Error:")
	assert.Contains(t, m.View(), "Failed to fetch stories")

	f.failFeed = false
	f.addStories(hn.FeedTop, 2)
	m = press(t, m, "R")
	assert.Empty(t, m.Session().Err)
	assert.Len(t, m.Session().Stories, 2)
}

func TestPageError(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 5)
	f.fail[1003] = true
	m := newTestModel(t, f)

	assert.Equal(t, "Failed to fetch story 1003", m.Session().Err)
	assert.Empty(t, m.Session().Stories)
}

// =============================================================================
// THREAD TESTS
// =============================================================================

func TestOpenCommentsAutoExpands(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 3)
	f.addThread()
	m := newTestModel(t, f)

	m = press(t, m, "enter")
	require.Equal(t, reader.ViewComments, m.Session().Viewing)
	th := m.Thread()
	require.NotNil(t, th)
	assert.False(t, th.Loading)

	// 20 is deleted; 10 and its replies (levels 0 and 1) load at once.
	require.Len(t, th.Roots, 1)
	assert.True(t, f.requested(11) && f.requested(12) && f.requested(13))
	assert.False(t, f.requested(14), "level 2 replies wait for the user")

	view := m.View()
	for _, want := range []string{"top story 1", "Comments", "alice", "root comment", "Hide 2 replies", "dave", "Show 1 reply"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "deepest")
	assert.NotContains(t, view, "Best", "feed tabs are hidden in the comments view")
	assert.Contains(t, view, "comment 1 of 4")
}

func TestOpenCommentsZeroAutoExpandDepth(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	f.addThread()
	cfg := config.Default()
	cfg.UI.AutoExpandDepth = 0
	m := newTestModel(t, f, func(o *Options) { o.Config = cfg })

	m = press(t, m, "enter")
	require.Len(t, m.Thread().Roots, 1)
	assert.False(t, f.requested(11), "depth 0 waits for the user")
	assert.Contains(t, m.View(), "Show 2 replies")
}

func TestToggleRepliesFetchesLazily(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	f.addThread()
	m := newTestModel(t, f)
	m = press(t, m, "enter")

	// Rows: 10, 11, 13, 12. Move to 13.
	m = press(t, m, "j")
	m = press(t, m, "j")
	require.Equal(t, 13, m.Thread().Visible()[m.Cursor()].ID())

	m = press(t, m, "r")
	assert.True(t, f.requested(14))
	assert.Contains(t, m.View(), "deepest")
	assert.Contains(t, m.View(), "Hide 1 reply")

	m = press(t, m, "r")
	assert.NotContains(t, m.View(), "deepest")
}

func TestCollapseComment(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	f.addThread()
	m := newTestModel(t, f)
	m = press(t, m, "enter")

	m = press(t, m, " ")
	view := m.View()
	assert.NotContains(t, view, "root comment")
	assert.NotContains(t, view, "first reply", "collapsing hides the replies too")
	assert.Len(t, m.Thread().Visible(), 1)

	m = press(t, m, "enter")
	assert.Contains(t, m.View(), "root comment")
}

func TestStoryWithoutComments(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	m := newTestModel(t, f)

	m = press(t, m, "enter")
	assert.Contains(t, m.View(), "No comments yet.")
	assert.Empty(t, f.comments, "nothing to fetch")
}

func TestRepliesFailureRendersNothing(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	f.addThread()
	f.fail[11] = true
	m := newTestModel(t, f)

	m = press(t, m, "enter")
	n := m.Thread().Find(10)
	require.NotNil(t, n)
	assert.Error(t, n.Err)
	assert.Empty(t, n.Replies)
	assert.NotContains(t, m.View(), "Error:")
}

func TestStaleThreadResultsDropped(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	f.addThread()
	m := newTestModel(t, f)

	m = press(t, m, "enter")
	old := m.Thread()
	m = press(t, m, "esc")
	assert.Equal(t, reader.ViewList, m.Session().Viewing)
	assert.Nil(t, m.Thread())

	m = step(t, m, CommentsMsg{Thread: old, Comments: []hn.Comment{{ID: 77, By: "ghost"}}})
	assert.Nil(t, m.Thread())
	assert.NotContains(t, m.View(), "ghost")
}

func TestOpenURL(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 2)
	s := f.items[1002]
	s.URL = "https://example.com/a"
	f.items[1002] = s

	var opened []string
	m := newTestModel(t, f, func(o *Options) {
		o.OpenURL = func(u string) error {
			opened = append(opened, u)
			return nil
		}
	})

	// Story 1 has no URL: "o" opens its comments instead.
	m = press(t, m, "o")
	assert.Equal(t, reader.ViewComments, m.Session().Viewing)
	assert.Empty(t, opened)

	m = press(t, m, "esc")
	m = press(t, m, "j")
	m = press(t, m, "o")
	assert.Equal(t, []string{"https://example.com/a"}, opened)
	assert.Contains(t, m.Status(), "Opened")
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestThemeTogglePersists(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	path := filepath.Join(t.TempDir(), "config.toml")

	m := newTestModel(t, f, func(o *Options) { o.ConfigPath = path })
	require.False(t, m.Session().Dark)

	m = press(t, m, "d")
	assert.True(t, m.Session().Dark)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, cfg.UI.Theme)

	m = press(t, m, "d")
	cfg, err = config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeLight, cfg.UI.Theme)
	assert.Empty(t, m.Status())
}

func TestThemeToggleTwiceSavesLatest(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	path := filepath.Join(t.TempDir(), "config.toml")
	m := newTestModel(t, f, func(o *Options) { o.ConfigPath = path })

	d := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}
	next, firstSave := m.Update(d)
	m = next.(Model)
	require.NotNil(t, firstSave)

	next, secondSave := m.Update(d)
	m = next.(Model)
	assert.Nil(t, secondSave, "a toggle during a save must wait for it")
	assert.False(t, m.Session().Dark)

	// The watcher reports the first write while the second is pending.
	stale := config.Default()
	stale.UI.Theme = config.ThemeDark
	m = step(t, m, ConfigReloadedMsg{Config: stale})
	assert.False(t, m.Session().Dark, "reload of an older save must not revert the toggle")

	m = drain(t, m, firstSave)
	assert.False(t, m.Session().Dark)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeLight, cfg.UI.Theme)

	// Once saves settle, external edits apply again.
	edited := config.Default()
	edited.UI.Theme = config.ThemeDark
	m = step(t, m, ConfigReloadedMsg{Config: edited})
	assert.True(t, m.Session().Dark)
}

func TestConfigReloadedAppliesTheme(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	m := newTestModel(t, f, func(o *Options) { o.Dark = true })

	cfg := config.Default()
	cfg.UI.Theme = config.ThemeLight
	m = step(t, m, ConfigReloadedMsg{Config: cfg})
	assert.False(t, m.Session().Dark)

	// auto keeps the current variant.
	cfg = config.Default()
	m = step(t, m, ConfigReloadedMsg{Config: cfg})
	assert.False(t, m.Session().Dark)
}

func TestHelpToggle(t *testing.T) {
	f := newFakeFetcher()
	f.addStories(hn.FeedTop, 1)
	m := newTestModel(t, f)

	short := m.View()
	m = press(t, m, "?")
	full := m.View()
	assert.NotContains(t, short, "scroll up")
	assert.Contains(t, full, "scroll up")
}

func TestQuit(t *testing.T) {
	f := newFakeFetcher()
	m := newTestModel(t, f)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.ctx.Err(), "quitting cancels in-flight fetches")
}
