// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Domain returns the host of rawURL with any leading "www." removed.
// It returns "" when rawURL is empty or has no host.
func Domain(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// browserCommand builds the platform command that opens a URL.
func browserCommand(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		// Empty quoted title; the URL must be the last argument.
		return exec.Command("cmd", "/c", "start", `""`, target), nil
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// OpenURL opens target in the system browser without waiting for it.
func OpenURL(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open non-web URL %q", target)
	}
	cmd, err := browserCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	return cmd.Start()
}
