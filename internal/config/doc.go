// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for newhn.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - APIConfig: Item API endpoint, timeouts and fan-out limits
//   - UIConfig: Theme, default feed, page size, comment limits
//   - LogConfig: Log level and file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (NEWHN_*)
//   - ~/.newhn/config.toml
//   - ~/.newhn/config.json
//   - Built-in defaults
//
// # Usage
//
//	path, _ := config.Path()
//	cfg, err := config.LoadFromPath(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := hn.NewClientWithConfig(cfg.ClientConfig())
//
// The reader persists exactly one value, the theme:
//
//	cfg.SetDark(true)
//	err = config.SaveTo(cfg, path)
package config
