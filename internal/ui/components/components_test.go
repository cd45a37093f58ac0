// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// =============================================================================
// NAVBAR TESTS
// =============================================================================

func TestNavbarView(t *testing.T) {
	theme := styles.NewTheme(true)
	n := NewNavbar(theme)
	n.SetWidth(100)
	n.Feed = hn.FeedBest

	view := n.View()
	for _, want := range []string{Brand, "Top", "New", "Best", "Ask", "Show", "Jobs", styles.ThemeGlyph(true)} {
		if !strings.Contains(view, want) {
			t.Errorf("navbar missing %q:\n%s", want, view)
		}
	}
}

func TestNavbarHidesTabsInCommentsView(t *testing.T) {
	n := NewNavbar(styles.NewTheme(false))
	n.ShowTabs = false

	view := n.View()
	if strings.Contains(view, "Best") {
		t.Errorf("tabs should be hidden:\n%s", view)
	}
	if !strings.Contains(view, styles.ThemeGlyph(false)) {
		t.Errorf("theme indicator missing:\n%s", view)
	}
}

func TestNavbarNarrowKeepsBrand(t *testing.T) {
	n := NewNavbar(styles.NewTheme(true))
	n.SetWidth(20)
	view := n.View()
	if !strings.Contains(view, Brand) {
		t.Errorf("brand missing on narrow terminal:\n%s", view)
	}
}

// =============================================================================
// STORY TESTS
// =============================================================================

func TestRenderStory(t *testing.T) {
	theme := styles.NewTheme(true)
	story := hn.Story{
		ID:          1,
		Title:       "Show HN: A thing",
		URL:         "https://www.example.com/post",
		Score:       1,
		By:          "alice",
		Time:        time.Now().Add(-3 * time.Hour).Unix(),
		Descendants: 0,
	}

	view := RenderStory(theme, story, 21, false, 100)
	for _, want := range []string{"21.", "Show HN: A thing", "(example.com)", "1 point", "by alice", "3 hours ago", "0 comments"} {
		if !strings.Contains(view, want) {
			t.Errorf("story missing %q:\n%s", want, view)
		}
	}
}

func TestRenderStoryTruncatesTitle(t *testing.T) {
	theme := styles.NewTheme(true)
	story := hn.Story{Title: strings.Repeat("word ", 40), By: "bob"}

	view := RenderStory(theme, story, 1, true, 60)
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Errorf("line width %d exceeds 60: %q", w, line)
		}
	}
	if !strings.Contains(view, "...") {
		t.Error("long title should be truncated")
	}
}

// =============================================================================
// COMMENT TESTS
// =============================================================================

func testNode(t *testing.T, c hn.Comment) *reader.Node {
	t.Helper()
	th := reader.NewThread(hn.Story{ID: 1, Kids: []int{c.ID}}, 0, reader.DefaultAutoExpandDepth)
	th.Begin()
	th.SetRoots([]hn.Comment{c}, nil)
	return th.Roots[0]
}

func TestRenderComment(t *testing.T) {
	theme := styles.NewTheme(true)
	n := testNode(t, hn.Comment{
		ID:   5,
		By:   "carol",
		Text: "Interesting &amp; true",
		Time: time.Now().Add(-2 * time.Minute).Unix(),
		Kids: []int{6, 7},
	})

	view := RenderComment(theme, nil, n, false, 80, "")
	for _, want := range []string{"carol", "2 minutes ago", "Interesting & true", "Hide 2 replies", chevronOpen} {
		if !strings.Contains(view, want) {
			t.Errorf("comment missing %q:\n%s", want, view)
		}
	}

	n.ToggleExpanded()
	view = RenderComment(theme, nil, n, false, 80, "")
	if strings.Contains(view, "Interesting") || strings.Contains(view, "replies") {
		t.Errorf("collapsed comment should hide body and toggle:\n%s", view)
	}
	if !strings.Contains(view, chevronClosed) {
		t.Errorf("collapsed chevron missing:\n%s", view)
	}
}

func TestRenderCommentIndent(t *testing.T) {
	theme := styles.NewTheme(false)
	n := &reader.Node{Comment: hn.Comment{By: "dave", Text: "x"}, Level: 3, Expanded: true}

	view := RenderComment(theme, nil, n, false, 80, "")
	first := strings.Split(view, "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", n.Indent())) {
		t.Errorf("expected %d cells of indent: %q", n.Indent(), first)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	theme := styles.NewTheme(true)
	story := hn.Story{
		Title:       "Ask HN: Why?",
		By:          "erin",
		Score:       42,
		Descendants: 7,
		Text:        "Because<p>reasons",
	}

	view := RenderSectionHeader(theme, nil, story, 80)
	for _, want := range []string{"Ask HN: Why?", "42 points", "by erin", "7 comments", "Because", "reasons", "Comments"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(NoComments(theme), "No comments yet.") {
		t.Error("NoComments text wrong")
	}
}

// =============================================================================
// PAGER, FOOTER, ERROR TESTS
// =============================================================================

func TestRenderPager(t *testing.T) {
	theme := styles.NewTheme(true)
	p := &reader.Pager{IDs: make([]int, 45), Page: 1, PerPage: 20}

	view := RenderPager(theme, p, 80)
	for _, want := range []string{"Previous", "Page 2", "Next"} {
		if !strings.Contains(view, want) {
			t.Errorf("pager missing %q:\n%s", want, view)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	if !strings.Contains(RenderFooter(styles.NewTheme(true), 80), FooterText) {
		t.Error("footer text missing")
	}
}

func TestErrorBox(t *testing.T) {
	theme := styles.NewTheme(true)
	if NewErrorBox(theme, "").View() != "" {
		t.Error("empty error should render nothing")
	}

	box := NewErrorBox(theme, reader.ErrFetchStories).WithHint("press R to retry")
	box.SetWidth(70)
	view := box.View()
	for _, want := range []string{"Error:", "Failed to fetch stories", "press R to retry"} {
		if !strings.Contains(view, want) {
			t.Errorf("error box missing %q:\n%s", want, view)
		}
	}
}

// =============================================================================
// SPINNER AND MARKDOWN TESTS
// =============================================================================

func TestSpinnerLifecycle(t *testing.T) {
	s := NewSpinner(styles.NewTheme(true))
	if s.View() != "" {
		t.Error("inactive spinner should render nothing")
	}
	if cmd := s.Start(); cmd == nil {
		t.Error("Start() should return a tick command")
	}
	if s.Start() != nil {
		t.Error("second Start() should be a no-op")
	}
	if !strings.Contains(s.View(), "Loading...") {
		t.Errorf("View() = %q", s.View())
	}
	s.Stop()
	if s.IsActive() {
		t.Error("Stop() should deactivate")
	}
	if _, cmd := s.Update(nil); cmd != nil {
		t.Error("inactive spinner should not tick")
	}
}

func TestMarkdownRenderCaches(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Render("hello", 40, true)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("rendered output missing text: %q", out)
	}
	if _, err := md.Render("hello", 40, true); err != nil {
		t.Fatal(err)
	}
	if len(md.renderers) != 1 || len(md.bodies) != 1 {
		t.Errorf("cache sizes = %d renderers, %d bodies", len(md.renderers), len(md.bodies))
	}

	if _, err := md.Render("hello", 40, false); err != nil {
		t.Fatal(err)
	}
	if len(md.renderers) != 2 {
		t.Errorf("light and dark should use separate renderers, got %d", len(md.renderers))
	}
}

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestMarkdownRenderKeepsEscapedText(t *testing.T) {
	md := NewMarkdown()
	body := "Use Vec&lt;String&gt; for AT&amp;amp;T<p># 1 fan<p>&gt; not a quote"

	out, err := md.Render(hn.Markdown(body), 80, true)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := ansiSeq.ReplaceAllString(out, "")
	for _, want := range []string{"Vec<String>", "AT&amp;T", "# 1 fan", "> not a quote"} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered body lost %q:\n%s", want, plain)
		}
	}
}

func TestFmtNumber(t *testing.T) {
	if got := fmtNumber(1234567); got != "1,234,567" {
		t.Errorf("fmtNumber = %q", got)
	}
	if got := joinMeta("a", "", "b"); got != "a · b" {
		t.Errorf("joinMeta = %q", got)
	}
}

func TestPoints(t *testing.T) {
	if got := points(1); got != "1 point" {
		t.Errorf("points(1) = %q", got)
	}
	if got := points(1204); got != "1,204 points" {
		t.Errorf("points(1204) = %q", got)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarView(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme(true))
	bar.SetWidth(80)
	bar.Mode = "Stories"
	bar.Info = "Top · page 2 of 25"

	view := bar.View()
	if !strings.Contains(view, "Stories") || !strings.Contains(view, "page 2 of 25") {
		t.Errorf("status bar missing position:\n%s", view)
	}
	if got := lipgloss.Width(view); got != 80 {
		t.Errorf("width = %d, want 80", got)
	}

	bar.Status = StatusLoading
	if view := bar.View(); !strings.Contains(view, "Loading...") {
		t.Errorf("loading status not shown:\n%s", view)
	}

	bar.Status = StatusError
	bar.Message = "Failed to fetch stories"
	if view := bar.View(); !strings.Contains(view, "Failed to fetch stories") {
		t.Errorf("error message not shown:\n%s", view)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme(false))
	bar.SetWidth(30)
	bar.Mode = "Comments"
	bar.Info = "comment 1 of 9"
	bar.Message = "Opened https://example.com/a/very/long/path"

	view := bar.View()
	if got := lipgloss.Width(view); got > 30 {
		t.Errorf("width = %d, want <= 30:\n%s", got, view)
	}
	if !strings.Contains(view, "Comments") {
		t.Errorf("mode dropped:\n%s", view)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		StatusReady:   "Ready",
		StatusLoading: "Loading...",
		StatusError:   "Error",
		Status(42):    "Unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
