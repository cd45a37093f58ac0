// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hn

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"entities", "It&#x27;s &quot;fine&quot; &gt; ok", `It's "fine" > ok`},
		{"paragraphs", "First para<p>Second para<p>Third", "First para\n\nSecond para\n\nThird"},
		{"italic", "this is <i>really</i> good", "this is really good"},
		{
			"bare link",
			`see <a href="https://example.com/a/b" rel="nofollow">https://example.com/a/b</a>`,
			"see https://example.com/a/b",
		},
		{
			"elided link",
			`<a href="https://example.com/very/long/path">https://example.com/very/...</a>`,
			"https://example.com/very/long/path",
		},
		{
			"labelled link",
			`<a href="https://example.com">the docs</a> say so`,
			"the docs (https://example.com) say so",
		},
		{
			"code",
			"Try:<p><pre><code>  x := 1\n  y := 2\n</code></pre>Works.",
			"Try:\n\n      x := 1\n      y := 2\n\nWorks.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText()\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"italic", "this is <i>really</i> good", "this is *really* good"},
		{"escape", "a_b *c*", `a\_b \*c\*`},
		{"bare link", `<a href="https://x.io">https://x.io</a>`, "<https://x.io>"},
		{"labelled link", `<a href="https://x.io">x [io]</a>`, `[x \[io\]](https://x.io)`},
		{"code", "<pre><code>a_b *c*</code></pre>", "```\na_b *c*\n```"},
		{"paragraphs", "one<p>two", "one\n\ntwo"},
		{"angle brackets", "Use Vec&lt;String&gt; here", `Use Vec\<String\> here`},
		{"ampersand entity", "AT&amp;amp;T", `AT\&amp;T`},
		{"heading marker", "# not a heading", `\# not a heading`},
		{"quote marker", "&gt; quoted", `\> quoted`},
		{"ordered marker", "1. first<p>2) second", "1\\. first\n\n2\\) second"},
		{"bullet marker", "- item<br>+ other", "\\- item\n\\+ other"},
		{"inline code", "run <code>a_b &lt;T&gt;</code> now", "run `a_b <T>` now"},
		{"mid-line markers", "pages 1. and - dash", "pages 1. and - dash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Markdown(tt.in); got != tt.want {
				t.Errorf("Markdown()\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
