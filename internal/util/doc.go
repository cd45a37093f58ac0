// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the newhn packages.
//
// # Key Functions
//
// Display:
//   - Truncate: width-aware truncation with an ellipsis
//   - TimeAgo: relative timestamps for item times ("3 hours ago")
//   - Domain: host of a story URL without a leading "www."
//   - Plural: "1 reply" / "3 replies"
//
// Files and processes:
//   - AtomicWriteFile: crash-safe file writing with fsync
//   - OpenURL: hand a link to the system browser
//
// # Usage
//
//	title := util.Truncate(story.Title, width-10)
//	when := util.TimeAgo(story.Time)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
