// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/util"
)

// Theme names accepted by ui.theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete newhn configuration.
type Config struct {
	API APIConfig `toml:"api" json:"api"`
	UI  UIConfig  `toml:"ui" json:"ui"`
	Log LogConfig `toml:"log" json:"log"`
}

// APIConfig controls how the item API is reached.
type APIConfig struct {
	// BaseURL is the API root, e.g. https://hacker-news.firebaseio.com/v0
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds every single request.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// MaxConcurrency caps parallel item fetches per fan-out.
	MaxConcurrency int `toml:"max_concurrency" json:"max_concurrency"`
	// RequestsPerSecond throttles outgoing requests (0 = unlimited).
	RequestsPerSecond float64 `toml:"requests_per_second" json:"requests_per_second"`
	// UserAgent overrides the default "newhn/<version>".
	UserAgent string `toml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// UIConfig contains reader view settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto" (follow the terminal background).
	// It is the only piece of state the reader writes back.
	Theme string `toml:"theme" json:"theme"`
	// DefaultFeed is the listing shown on start and on Home.
	DefaultFeed string `toml:"default_feed" json:"default_feed"`
	// PageSize is the number of stories per page.
	PageSize int `toml:"page_size" json:"page_size"`
	// CommentLimit caps the top-level comments loaded for a story.
	CommentLimit int `toml:"comment_limit" json:"comment_limit"`
	// AutoExpandDepth shows replies automatically for levels below it.
	AutoExpandDepth int `toml:"auto_expand_depth" json:"auto_expand_depth"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level"`
	// File is the log path (empty = ~/.newhn/newhn.log).
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           hn.DefaultBaseURL,
			TimeoutSecs:       15,
			MaxConcurrency:    10,
			RequestsPerSecond: 25,
		},
		UI: UIConfig{
			Theme:           ThemeAuto,
			DefaultFeed:     string(hn.FeedTop),
			PageSize:        20,
			CommentLimit:    30,
			AutoExpandDepth: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Version is stamped by the CLI at startup and used in the User-Agent.
var Version = "dev"

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the newhn configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".newhn"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns ~/.newhn/newhn.log.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "newhn.log"), nil
}

// Path returns the config file in use: config.toml if it exists, else an
// existing config.json, else config.toml.
func Path() (string, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, err := os.Stat(jsonPath); err == nil {
			return jsonPath, nil
		}
	}
	return tomlPath, nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadFromPath loads configuration from a specific file. Files ending in
// .json are decoded as JSON, everything else as TOML. A missing file yields
// the defaults so that --config can name a file that is about to be created.
func LoadFromPath(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFileOnly loads path without NEWHN_* overrides. Commands that modify
// the file and write it back use it so the environment never leaks into
// the saved config.
func LoadFileOnly(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if strings.HasSuffix(path, ".json") {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
			}
		} else if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) finish() error {
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML decodes a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies NEWHN_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NEWHN_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("NEWHN_FEED"); v != "" {
		c.UI.DefaultFeed = v
	}
	if v := os.Getenv("NEWHN_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("NEWHN_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.PageSize = n
		}
	}
	if v := os.Getenv("NEWHN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("NEWHN_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

// SetDefaults fills zero-value fields from Default.
func (c *Config) SetDefaults() {
	d := Default()

	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = d.API.TimeoutSecs
	}
	if c.API.MaxConcurrency <= 0 {
		c.API.MaxConcurrency = d.API.MaxConcurrency
	}

	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.DefaultFeed == "" {
		c.UI.DefaultFeed = d.UI.DefaultFeed
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = d.UI.PageSize
	}
	if c.UI.CommentLimit <= 0 {
		c.UI.CommentLimit = d.UI.CommentLimit
	}
	if c.UI.AutoExpandDepth < 0 {
		c.UI.AutoExpandDepth = d.UI.AutoExpandDepth
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Feed returns the configured default feed. Validate guarantees it parses.
func (c *Config) Feed() hn.Feed {
	f, err := hn.ParseFeed(c.UI.DefaultFeed)
	if err != nil {
		return hn.FeedTop
	}
	return f
}

// ClientConfig converts the api section into an hn client configuration.
func (c *Config) ClientConfig() *hn.ClientConfig {
	return &hn.ClientConfig{
		BaseURL:           c.API.BaseURL,
		Timeout:           secs(c.API.TimeoutSecs),
		MaxConcurrency:    c.API.MaxConcurrency,
		RequestsPerSecond: c.API.RequestsPerSecond,
		UserAgent:         c.UserAgent(),
	}
}

// UserAgent returns api.user_agent, or "newhn/<version>" when unset.
func (c *Config) UserAgent() string {
	if c.API.UserAgent != "" {
		return c.API.UserAgent
	}
	return "newhn/" + Version
}

// SetDark records the dark/light choice in ui.theme.
func (c *Config) SetDark(dark bool) {
	if dark {
		c.UI.Theme = ThemeDark
	} else {
		c.UI.Theme = ThemeLight
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTo writes cfg to path, choosing JSON or TOML by extension.
func SaveTo(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# newhn configuration file\n")
	b.WriteString("# ui.theme is rewritten when the theme is toggled in the reader\n\n")

	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.API.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("invalid URL '%s', must be http(s)://host[/path]", c.API.BaseURL),
		})
	}
	if c.API.MaxConcurrency > 100 {
		errs = append(errs, ValidationError{
			Field:   "api.max_concurrency",
			Message: fmt.Sprintf("%d is too high, must be between 1 and 100", c.API.MaxConcurrency),
		})
	}
	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{
			Field:   "api.requests_per_second",
			Message: "must not be negative",
		})
	}

	switch c.UI.Theme {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}
	if _, err := hn.ParseFeed(c.UI.DefaultFeed); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.default_feed",
			Message: err.Error(),
		})
	}
	if c.UI.PageSize > 100 {
		errs = append(errs, ValidationError{
			Field:   "ui.page_size",
			Message: fmt.Sprintf("%d is too high, must be between 1 and 100", c.UI.PageSize),
		})
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
