// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// newhn reads Hacker News stories and threaded comments in the terminal.
package main

import "github.com/makwanadeepam/newhackernews/internal/cli"

func main() {
	cli.Main()
}
