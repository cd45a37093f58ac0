// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/components"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

type listOptions struct {
	feed string
	page int
	json bool
}

// listResult is the --json payload of list.
type listResult struct {
	Feed    hn.Feed    `json:"feed"`
	Page    int        `json:"page"`
	Pages   int        `json:"pages"`
	Total   int        `json:"total"`
	Stories []listItem `json:"stories"`
}

type listItem struct {
	Rank int `json:"rank"`
	hn.Story
	Domain string `json:"domain,omitempty"`
}

func newListCommand(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of a story listing",
		Example: `  newhn list
  newhn list --feed best --page 2
  newhn list --feed ask --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.feed, "feed", "f", "", "feed: top, new, best, ask, show, job (default from config)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, opts *listOptions) error {
	e, err := root.setup(false)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	name := opts.feed
	if name == "" {
		name = e.cfg.UI.DefaultFeed
	}
	feed, err := hn.ParseFeed(name)
	if err != nil {
		return NewValidationErrorWithExample("feed", name, "unknown feed", "newhn list --feed best")
	}
	if opts.page < 1 {
		return NewValidationError("page", strconv.Itoa(opts.page), "must be 1 or greater")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return OutputJSON(out, opts.json, "list", func() (any, error) {
		ids, err := e.client.StoryIDs(ctx, feed)
		if err != nil {
			e.log.Warn("failed to fetch story ids", zap.String("feed", string(feed)), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", reader.ErrFetchStories, err)
		}

		pager := reader.NewPager(e.cfg.UI.PageSize)
		pager.Reset(ids)
		if opts.page > pager.Pages() {
			return nil, NewValidationError("page", strconv.Itoa(opts.page),
				fmt.Sprintf("%s has %d pages", feed.Label(), pager.Pages()))
		}
		pager.Goto(opts.page - 1)

		stories, err := e.client.Stories(ctx, pager.Slice())
		if err != nil {
			e.log.Warn("failed to fetch stories", zap.Int("page", opts.page), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", reader.ErrFetchStories, err)
		}

		res := &listResult{
			Feed:    feed,
			Page:    opts.page,
			Pages:   pager.Pages(),
			Total:   len(ids),
			Stories: make([]listItem, len(stories)),
		}
		for i, s := range stories {
			res.Stories[i] = listItem{Rank: pager.Offset() + i + 1, Story: s, Domain: s.Domain()}
		}

		if !opts.json {
			printList(out, styles.NewTheme(styles.ResolveDark(e.cfg.UI.Theme)), res, pager)
		}
		return res, nil
	})
}

func printList(w io.Writer, theme *styles.Theme, res *listResult, pager *reader.Pager) {
	width := GetTerminalWidth()
	theme.SetWidth(width)

	fmt.Fprintln(w, TitleStyle.Render(res.Feed.Label()+" stories")+"  "+
		DimStyle.Render(fmt.Sprintf("page %d of %d", res.Page, res.Pages)))
	fmt.Fprintln(w)

	if len(res.Stories) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No stories."))
		return
	}
	for _, item := range res.Stories {
		fmt.Fprintln(w, components.RenderStory(theme, item.Story, item.Rank, false, width))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, components.RenderPager(theme, pager, width))
}
