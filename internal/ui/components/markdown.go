// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// maxCachedBodies bounds the rendered-body cache; it is cleared when full.
const maxCachedBodies = 2048

type rendererKey struct {
	width int
	dark  bool
}

type bodyKey struct {
	rendererKey
	source string
}

// Markdown renders comment bodies with glamour, using the dark or light
// standard style to match the theme. Renderers and results are cached by
// width and theme since View runs on every frame.
type Markdown struct {
	mu        sync.Mutex
	renderers map[rendererKey]*glamour.TermRenderer
	bodies    map[bodyKey]string
}

// NewMarkdown creates an empty renderer cache.
func NewMarkdown() *Markdown {
	return &Markdown{
		renderers: make(map[rendererKey]*glamour.TermRenderer),
		bodies:    make(map[bodyKey]string),
	}
}

// Render renders markdown wrapped at width.
func (m *Markdown) Render(markdown string, width int, dark bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rk := rendererKey{width: width, dark: dark}
	bk := bodyKey{rendererKey: rk, source: markdown}
	if out, ok := m.bodies[bk]; ok {
		return out, nil
	}

	r, ok := m.renderers[rk]
	if !ok {
		var err error
		r, err = NewTermRenderer(width, dark)
		if err != nil {
			return "", err
		}
		m.renderers[rk] = r
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, "\n")

	if len(m.bodies) >= maxCachedBodies {
		clear(m.bodies)
	}
	m.bodies[bk] = out
	return out, nil
}

// NewTermRenderer builds a glamour renderer for the given wrap width and
// theme variant.
func NewTermRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
}
