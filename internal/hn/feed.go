// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hn

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Feed names a story listing endpoint.
type Feed string

const (
	FeedTop  Feed = "top"
	FeedNew  Feed = "new"
	FeedBest Feed = "best"
	FeedAsk  Feed = "ask"
	FeedShow Feed = "show"
	FeedJob  Feed = "job"
)

// Feeds lists every feed in navigation order.
var Feeds = []Feed{FeedTop, FeedNew, FeedBest, FeedAsk, FeedShow, FeedJob}

var titleCaser = cases.Title(language.English)

// ParseFeed parses a feed name case-insensitively. "jobs" is accepted as
// an alias for "job".
func ParseFeed(s string) (Feed, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "jobs" {
		name = string(FeedJob)
	}
	for _, f := range Feeds {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown feed %q (want one of top, new, best, ask, show, job)", s)
}

// Endpoint returns the path of the listing relative to the API base.
func (f Feed) Endpoint() string {
	return string(f) + "stories.json"
}

// Label is the navigation label, e.g. "Top".
func (f Feed) Label() string {
	if f == FeedJob {
		return "Jobs"
	}
	return titleCaser.String(string(f))
}

// Index returns the position of f in Feeds, or -1.
func (f Feed) Index() int {
	for i, g := range Feeds {
		if g == f {
			return i
		}
	}
	return -1
}

// NextFeed cycles through Feeds.
func NextFeed(f Feed) Feed {
	i := f.Index()
	return Feeds[(i+1)%len(Feeds)]
}
