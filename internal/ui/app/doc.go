// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the root Bubble Tea model of the reader.
//
// The model owns a reader.Session (feed, page, theme, view) and, while the
// comments view is open, a reader.Thread. Fetches run as tea.Cmds against a
// Fetcher and report back through the message types in messages.go; results
// for a request that has since been superseded are dropped.
//
// # Layout
//
//	navbar        brand, feed tabs, theme indicator
//	viewport      story list or comment thread
//	pager bar     list view only
//	footer/help
package app
