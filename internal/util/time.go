// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"time"

	"github.com/dustin/go-humanize"
)

// now is swapped out by tests.
var now = time.Now

// TimeAgo renders a unix timestamp relative to the current time,
// e.g. "5 minutes ago". A zero timestamp renders as an empty string.
func TimeAgo(unix int64) string {
	if unix <= 0 {
		return ""
	}
	return TimeAgoFrom(time.Unix(unix, 0), now())
}

// TimeAgoFrom renders t relative to ref. Times slightly in the future
// (clock skew against the API) are reported as "just now".
func TimeAgoFrom(t, ref time.Time) string {
	if d := ref.Sub(t); d < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, ref, "ago", "from now")
}
