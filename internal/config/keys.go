// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

func secs(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// field binds a dotted key to a getter and setter on Config.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func intSetter(dst func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		*dst(c) = n
		return nil
	}
}

var fields = map[string]field{
	"api.base_url": {
		get: func(c *Config) string { return c.API.BaseURL },
		set: func(c *Config, v string) error { c.API.BaseURL = v; return nil },
	},
	"api.timeout_secs": {
		get: func(c *Config) string { return strconv.Itoa(c.API.TimeoutSecs) },
		set: intSetter(func(c *Config) *int { return &c.API.TimeoutSecs }),
	},
	"api.max_concurrency": {
		get: func(c *Config) string { return strconv.Itoa(c.API.MaxConcurrency) },
		set: intSetter(func(c *Config) *int { return &c.API.MaxConcurrency }),
	},
	"api.requests_per_second": {
		get: func(c *Config) string { return strconv.FormatFloat(c.API.RequestsPerSecond, 'g', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			c.API.RequestsPerSecond = f
			return nil
		},
	},
	"api.user_agent": {
		get: func(c *Config) string { return c.UserAgent() },
		set: func(c *Config, v string) error { c.API.UserAgent = v; return nil },
	},
	"ui.theme": {
		get: func(c *Config) string { return c.UI.Theme },
		set: func(c *Config, v string) error { c.UI.Theme = v; return nil },
	},
	"ui.default_feed": {
		get: func(c *Config) string { return c.UI.DefaultFeed },
		set: func(c *Config, v string) error { c.UI.DefaultFeed = v; return nil },
	},
	"ui.page_size": {
		get: func(c *Config) string { return strconv.Itoa(c.UI.PageSize) },
		set: intSetter(func(c *Config) *int { return &c.UI.PageSize }),
	},
	"ui.comment_limit": {
		get: func(c *Config) string { return strconv.Itoa(c.UI.CommentLimit) },
		set: intSetter(func(c *Config) *int { return &c.UI.CommentLimit }),
	},
	"ui.auto_expand_depth": {
		get: func(c *Config) string { return strconv.Itoa(c.UI.AutoExpandDepth) },
		set: intSetter(func(c *Config) *int { return &c.UI.AutoExpandDepth }),
	},
	"log.level": {
		get: func(c *Config) string { return c.Log.Level },
		set: func(c *Config, v string) error { c.Log.Level = v; return nil },
	},
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}

// Keys lists every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "ui.theme".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key and re-validates the whole configuration.
// On failure the config is left unchanged.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	next := *c
	if err := f.set(&next, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	next.SetDefaults()
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
