// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the newhn command line.
//
// Running newhn without a subcommand starts the interactive reader. The
// subcommands print the same data for scripts and pipes:
//
//	newhn list --feed best --page 2
//	newhn thread 8863 --depth 3
//	newhn theme toggle
//	newhn config set ui.page_size 30
//	newhn version
//
// list and thread accept --json, which prints a JSONResponse envelope on
// stdout. Errors are printed to stderr as "Error: <message>".
package cli
