// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hn provides the HTTP client for the Hacker News item API.
//
// The API is read-only JSON over HTTP GET with two endpoint shapes:
//
//	<base>/<feed>stories.json   array of story ids, best first
//	<base>/item/<id>.json       one story or comment record, or null
//
// # Key Types
//
//   - Client: HTTP client with bounded parallel fan-out and rate limiting
//   - Feed: a story listing (top, new, best, ask, show, job)
//   - Item: the raw record returned by item/<id>.json
//   - Story, Comment: typed views over Item
//   - ClientError: categorized request failures
//
// # Usage
//
//	client := hn.NewClient()
//	ids, err := client.StoryIDs(ctx, hn.FeedTop)
//	stories, err := client.Stories(ctx, ids[:20])
//	comments, err := client.Comments(ctx, stories[0].Kids)
//
// Comment bodies are HTML fragments; PlainText and Markdown convert them
// for terminal display.
package hn
