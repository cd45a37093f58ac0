// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the newhn reader.

# Color System (colors.go)

The palette is built from two scales, neon (the brand green) and slate
(neutral surfaces and text). Every token is a Lip Gloss AdaptiveColor with a
light and a dark variant:

	Brand          - Logo, active tab, score
	Link           - Story domains and URLs
	TextPrimary    - Titles and comment bodies
	TextMuted      - Metadata: author, age, counts
	BorderEven     - Left rule of comments at even depth
	BorderOdd      - Left rule of comments at odd depth
	ErrorFg/Bg     - Error box

# Dark and Light

Unlike automatic detection, the reader lets the user pick the theme and
persists the choice. SetDark forces the variant Lip Gloss resolves, and
ResolveDark maps the configured value ("dark", "light" or "auto") to a
boolean, asking the terminal only for "auto".

# Theme (theme.go)

Theme bundles the composed styles used by the components:

	theme := styles.NewTheme(true)
	title := theme.StoryTitle.Render(story.Title)

# Spinners (animations.go)

Spinner frame sets for the loading indicator.
*/
package styles
