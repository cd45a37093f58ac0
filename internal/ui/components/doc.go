// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the newhn reader.

Components are plain renderers over reader state and a styles.Theme; the
bubbletea model in ui/app owns all state and decides what to draw.

# Chrome

Navbar (navbar.go) - Brand, feed tabs and the theme indicator.
Footer (footer.go) - Closing line under every view.
PagerBar (pager.go) - Previous / Page N / Next controls.

# Content

RenderStory (story.go) - One row of a story listing.
RenderSectionHeader (comment.go) - Story header above a comment thread.
RenderComment (comment.go) - One comment with its reply toggle.
Markdown (markdown.go) - glamour renderer for comment bodies.

# Feedback

Spinner (spinner.go) - Animated loading indicator.
ErrorBox (error.go) - Boxed "Error: <message>" display.
*/
package components
