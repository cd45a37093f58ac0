// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reader holds the view state of the reader, free of I/O.
//
// # Key Types
//
//   - Pager: page arithmetic over a listing of story ids
//   - Session: the active feed, page, theme and view
//   - Thread: the comment tree of one story
//   - Node: one comment with its expand and reply state
//
// The UI issues fetches and feeds the results back through these types.
// Every fetch started by a Session is tagged with a sequence number and
// results carrying an older number are discarded, so a slow response can
// never overwrite the state of a newer request.
package reader
