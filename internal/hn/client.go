// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Firebase endpoint of the item API.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// maxBodyBytes bounds a single response; listings are ~500 ids.
const maxBodyBytes = 4 << 20

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the client.
type ClientConfig struct {
	// BaseURL is the API root (default: DefaultBaseURL)
	BaseURL string

	// Timeout for each request (default: 15s)
	Timeout time.Duration

	// MaxConcurrency caps in-flight item requests per fan-out (default: 10)
	MaxConcurrency int

	// RequestsPerSecond throttles all requests; 0 disables throttling
	RequestsPerSecond float64

	// UserAgent sent with every request
	UserAgent string

	// Logger receives request failures (default: no-op)
	Logger *zap.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           DefaultBaseURL,
		Timeout:           15 * time.Second,
		MaxConcurrency:    10,
		RequestsPerSecond: 25,
		UserAgent:         "newhn",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client fetches listings and items. It is safe for concurrent use.
//
// Example:
//
//	client := hn.NewClient()
//	ids, err := client.StoryIDs(ctx, hn.FeedBest)
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

// NewClient creates a client with the default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client; zero fields take their defaults.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	def := DefaultConfig()

	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = def.MaxConcurrency
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		// Let a whole fan-out start at once, then settle to the rate.
		burst = cfg.MaxConcurrency
	}

	return &Client{
		config:     &cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        cfg.Logger,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// LISTINGS
// =============================================================================

// StoryIDs fetches the ids of a story listing, in ranking order.
func (c *Client) StoryIDs(ctx context.Context, feed Feed) ([]int, error) {
	var ids []int
	found, err := c.getJSON(ctx, feed.Endpoint(), "failed to fetch stories", &ids)
	if err != nil {
		return nil, err
	}
	if !found {
		return []int{}, nil
	}
	return ids, nil
}

// =============================================================================
// ITEMS
// =============================================================================

// Item fetches a single record. A record the API reports as null yields
// (nil, nil).
func (c *Client) Item(ctx context.Context, id int) (*Item, error) {
	return c.item(ctx, id, "item")
}

func (c *Client) item(ctx context.Context, id int, noun string) (*Item, error) {
	var it Item
	msg := fmt.Sprintf("failed to fetch %s %d", noun, id)
	found, err := c.getJSON(ctx, "item/"+strconv.Itoa(id)+".json", msg, &it)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &it, nil
}

// Story fetches one story by id.
func (c *Client) Story(ctx context.Context, id int) (*Story, error) {
	it, err := c.item(ctx, id, "story")
	if err != nil || it == nil {
		return nil, err
	}
	s := it.Story()
	return &s, nil
}

// Items fetches ids in parallel, bounded by MaxConcurrency. The result is
// index-aligned with ids; null records are nil entries. The first failure
// cancels the remaining requests and is returned.
func (c *Client) Items(ctx context.Context, ids []int) ([]*Item, error) {
	return c.items(ctx, ids, "item")
}

func (c *Client) items(ctx context.Context, ids []int, noun string) ([]*Item, error) {
	out := make([]*Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.MaxConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			it, err := c.item(gctx, id, noun)
			if err != nil {
				return err
			}
			out[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stories fetches stories in parallel, preserving the order of ids and
// dropping records the API returns as null.
func (c *Client) Stories(ctx context.Context, ids []int) ([]Story, error) {
	items, err := c.items(ctx, ids, "story")
	if err != nil {
		return nil, err
	}
	stories := make([]Story, 0, len(items))
	for _, it := range items {
		if it != nil {
			stories = append(stories, it.Story())
		}
	}
	return stories, nil
}

// Comments fetches comments in parallel, preserving the order of ids and
// dropping null, deleted and dead records.
func (c *Client) Comments(ctx context.Context, ids []int) ([]Comment, error) {
	items, err := c.items(ctx, ids, "comment")
	if err != nil {
		return nil, err
	}
	comments := make([]Comment, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if cm := it.Comment(); cm.Visible() {
			comments = append(comments, cm)
		}
	}
	return comments, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// getJSON performs a throttled GET of path and decodes the body into v.
// found is false when the body is the JSON literal null.
func (c *Client) getJSON(ctx context.Context, path, msg string, v any) (found bool, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, transportError(msg, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/"+path, nil)
	if err != nil {
		return false, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = transportError(msg, err)
		c.log.Warn("request failed", zap.String("path", path), zap.Error(err))
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("unexpected status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return false, &ClientError{Type: ErrTypeStatus, Message: msg, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, transportError(msg, err)
	}
	c.log.Debug("fetched",
		zap.String("path", path),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, &ClientError{Type: ErrTypeDecode, Message: msg, Cause: err}
	}
	return true, nil
}
