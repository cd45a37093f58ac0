// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/reader"
	"github.com/makwanadeepam/newhackernews/internal/ui/components"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// replyWorkers bounds how many reply lists load at once. Each list is
// itself a fan-out bounded by the client.
const replyWorkers = 4

type threadOptions struct {
	depth int
	json  bool
	plain bool
}

// threadResult is the --json payload of thread.
type threadResult struct {
	Story    hn.Story      `json:"story"`
	Comments []commentJSON `json:"comments"`
}

type commentJSON struct {
	ID      int           `json:"id"`
	By      string        `json:"by"`
	Time    int64         `json:"time"`
	Text    string        `json:"text"`
	Replies []commentJSON `json:"replies,omitempty"`
	// MoreReplies counts replies below --depth that were not loaded.
	MoreReplies int `json:"more_replies,omitempty"`
}

func newThreadCommand(root *rootOptions) *cobra.Command {
	opts := &threadOptions{}

	cmd := &cobra.Command{
		Use:   "thread <story-id>",
		Short: "Print a story and its comment thread",
		Example: `  newhn thread 8863
  newhn thread 8863 --depth 4 --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThread(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "reply levels to load (default from config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "plain text instead of markdown")
	return cmd
}

func runThread(cmd *cobra.Command, root *rootOptions, opts *threadOptions, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return NewValidationErrorWithExample("story id", arg, "must be a positive number", "newhn thread 8863")
	}
	if cmd.Flags().Changed("depth") && opts.depth < 1 {
		return NewValidationError("depth", strconv.Itoa(opts.depth), "must be 1 or greater")
	}

	e, err := root.setup(false)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	depth := e.cfg.UI.AutoExpandDepth
	if opts.depth > 0 {
		depth = opts.depth
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return OutputJSON(out, opts.json, "thread", func() (any, error) {
		story, err := e.client.Story(ctx, id)
		if err != nil {
			return nil, err
		}
		if story == nil {
			return nil, &NotFoundError{Resource: "story", ID: arg}
		}

		thread := reader.NewThread(*story, e.cfg.UI.CommentLimit, depth)
		if err := loadThread(ctx, e.client, e.log, thread); err != nil {
			return nil, err
		}

		if !opts.json {
			printThread(out, e, thread, opts.plain || !ColorsEnabled())
		}
		return &threadResult{Story: *story, Comments: threadJSON(thread.Roots)}, nil
	})
}

// loadThread fetches the top-level comments, then level by level every
// reply list the thread shows by default.
func loadThread(ctx context.Context, client *hn.Client, log *zap.Logger, thread *reader.Thread) error {
	if !thread.Begin() {
		return nil
	}
	comments, err := client.Comments(ctx, thread.RootIDs())
	thread.SetRoots(comments, err)
	if err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	for {
		pending := thread.PendingFetches()
		if len(pending) == 0 {
			return nil
		}

		replies := make([][]hn.Comment, len(pending))
		errs := make([]error, len(pending))
		var g errgroup.Group
		g.SetLimit(replyWorkers)
		for i, n := range pending {
			n.BeginFetch()
			g.Go(func() error {
				replies[i], errs[i] = client.Comments(ctx, n.Comment.Kids)
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return err
		}
		for i, n := range pending {
			if errs[i] != nil {
				log.Warn("failed to fetch replies", zap.Int("comment", n.ID()), zap.Error(errs[i]))
			}
			n.SetReplies(replies[i], errs[i])
		}
	}
}

func threadJSON(nodes []*reader.Node) []commentJSON {
	out := make([]commentJSON, 0, len(nodes))
	for _, n := range nodes {
		c := commentJSON{
			ID:   n.Comment.ID,
			By:   n.Comment.By,
			Time: n.Comment.Time,
			Text: hn.PlainText(n.Comment.Text),
		}
		if n.Loaded {
			c.Replies = threadJSON(n.Replies)
		} else {
			c.MoreReplies = len(n.Comment.Kids)
		}
		out = append(out, c)
	}
	return out
}

func printThread(w io.Writer, e *env, thread *reader.Thread, plain bool) {
	width := GetTerminalWidth()
	theme := styles.NewTheme(styles.ResolveDark(e.cfg.UI.Theme))
	theme.SetWidth(width)

	var md *components.Markdown
	if !plain {
		md = components.NewMarkdown()
	}

	fmt.Fprintln(w, components.RenderSectionHeader(theme, md, thread.Story, width))
	fmt.Fprintln(w)

	if thread.Loaded && len(thread.Roots) == 0 {
		fmt.Fprintln(w, components.NoComments(theme))
		return
	}
	for _, n := range thread.Visible() {
		fmt.Fprintln(w, components.RenderComment(theme, md, n, false, width, ""))
	}
}
