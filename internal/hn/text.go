// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hn

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Comment and post bodies use a small HTML subset: paragraphs separated by
// <p> (the first one is bare), <i>, <a href>, <pre><code> and entities.

type textMode int

const (
	modePlain textMode = iota
	modeMarkdown
)

// PlainText converts an HTML body to terminal text. Paragraphs are
// separated by a blank line, code blocks are indented four spaces and
// links whose text differs from the target get the URL appended.
func PlainText(body string) string {
	return convert(body, modePlain)
}

// Markdown converts an HTML body to CommonMark suitable for glamour.
func Markdown(body string) string {
	return convert(body, modeMarkdown)
}

func convert(body string, mode textMode) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(body), ctx)
	if err != nil {
		// The tokenizer only fails on reader errors; fall back to unescaping.
		return strings.TrimSpace(html.UnescapeString(body))
	}

	w := &textWriter{mode: mode}
	for _, n := range nodes {
		w.walk(n)
	}
	return w.String()
}

type textWriter struct {
	mode  textMode
	paras []string
	cur    strings.Builder
	inPre  bool
	inCode bool
}

func (w *textWriter) String() string {
	w.flush()
	return strings.Join(w.paras, "\n\n")
}

// flush closes the current paragraph.
func (w *textWriter) flush() {
	p := strings.TrimSpace(w.cur.String())
	if p != "" {
		w.paras = append(w.paras, p)
	}
	w.cur.Reset()
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
	default:
		w.children(n)
		return
	}

	switch n.DataAtom {
	case atom.P:
		w.flush()
		w.children(n)
		w.flush()
	case atom.Br:
		w.cur.WriteString("\n")
	case atom.Pre:
		w.pre(n)
	case atom.I, atom.Em:
		w.wrap(n, "*")
	case atom.B, atom.Strong:
		w.wrap(n, "**")
	case atom.Code:
		w.inCode = true
		w.wrap(n, "`")
		w.inCode = false
	case atom.A:
		w.link(n)
	default:
		w.children(n)
	}
}

func (w *textWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *textWriter) text(s string) {
	if w.inPre {
		w.cur.WriteString(s)
		return
	}
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		if s != "" {
			w.space()
		}
		return
	}
	if startsWithSpace(s) {
		w.space()
	}
	if w.mode == modeMarkdown && !w.inCode {
		collapsed = escapeMarkdown(collapsed)
		if w.atLineStart() {
			collapsed = escapeLineStart(collapsed)
		}
	}
	w.cur.WriteString(collapsed)
	if endsWithSpace(s) {
		w.space()
	}
}

// space writes a single separating space unless one is already pending.
func (w *textWriter) space() {
	cur := w.cur.String()
	if cur == "" || strings.HasSuffix(cur, " ") || strings.HasSuffix(cur, "\n") {
		return
	}
	w.cur.WriteString(" ")
}

func (w *textWriter) atLineStart() bool {
	cur := strings.TrimRight(w.cur.String(), " ")
	return cur == "" || strings.HasSuffix(cur, "\n")
}

func startsWithSpace(s string) bool {
	return strings.TrimLeftFunc(s, unicode.IsSpace) != s
}

func endsWithSpace(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) != s
}

func (w *textWriter) wrap(n *html.Node, marker string) {
	if w.mode == modePlain || w.inPre {
		w.children(n)
		return
	}
	w.cur.WriteString(marker)
	w.children(n)
	w.cur.WriteString(marker)
}

func (w *textWriter) link(n *html.Node) {
	href := attr(n, "href")
	label := strings.TrimSpace(nodeText(n))

	switch {
	case href == "":
		w.text(label)
	case w.mode == modeMarkdown && sameLink(label, href):
		w.cur.WriteString("<" + href + ">")
	case w.mode == modeMarkdown:
		w.cur.WriteString("[" + escapeMarkdown(label) + "](" + href + ")")
	case sameLink(label, href):
		w.cur.WriteString(href)
	default:
		w.cur.WriteString(label + " (" + href + ")")
	}
}

func (w *textWriter) pre(n *html.Node) {
	w.flush()
	w.inPre = true
	w.children(n)
	w.inPre = false

	code := strings.Trim(w.cur.String(), "\n")
	w.cur.Reset()
	if code == "" {
		return
	}
	if w.mode == modeMarkdown {
		w.paras = append(w.paras, "```\n"+code+"\n```")
		return
	}
	lines := strings.Split(code, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	w.paras = append(w.paras, strings.Join(lines, "\n"))
}

// sameLink reports whether a link label is just the (possibly elided)
// target, which is how the site renders bare URLs.
func sameLink(label, href string) bool {
	if label == href {
		return true
	}
	trimmed := strings.TrimSuffix(label, "...")
	return trimmed != label && strings.HasPrefix(href, trimmed)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return b.String()
}

// Decoded entities such as &lt;T&gt; must not reach goldmark as raw HTML.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
	"#", `\#`,
	"|", `\|`,
	"~", `\~`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// orderedMarker matches an ordered list marker such as "1." or "2)".
var orderedMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)

// escapeLineStart neutralises block markers that only apply at the start
// of a line.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '-', '+', '=':
		return `\` + s
	}
	return orderedMarker.ReplaceAllString(s, `$1\$2`)
}
