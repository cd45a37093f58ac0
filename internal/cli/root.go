// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/hn"
	"github.com/makwanadeepam/newhackernews/internal/logging"
	"github.com/makwanadeepam/newhackernews/internal/ui/app"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool

	// reader only
	feed  string
	plain bool
}

// env is the wiring a command runs with.
type env struct {
	cfg     *config.Config
	cfgPath string
	log     *zap.Logger
	client  *hn.Client
}

// NewRootCommand builds the newhn command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "newhn",
		Short: "Read Hacker News stories and comments in the terminal",
		Long: `newhn browses the Hacker News top, new and best listings (plus ask,
show and jobs) and reads their threaded comments.

Run without a command to start the interactive reader.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReader(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.newhn/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging (to stderr for subcommands)")
	cmd.Flags().StringVarP(&opts.feed, "feed", "f", "", "feed to open: top, new, best, ask, show, job")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "render comments as plain text instead of markdown")

	cmd.AddCommand(
		newListCommand(opts),
		newThreadCommand(opts),
		newThemeCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// Main runs the command line and exits with status 1 on error.
func Main() {
	exitOnError(Execute())
}

// =============================================================================
// SETUP
// =============================================================================

// resolveConfigPath returns --config or the default config file.
func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.Path()
}

func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// loadFileConfig loads the config file without environment overrides, for
// commands that write it back.
func (o *rootOptions) loadFileConfig() (*config.Config, string, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFileOnly(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// logger writes to the log file. Subcommands log to stderr with --verbose;
// the reader never does because it owns the terminal.
func (o *rootOptions) logger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
		if !interactive {
			return logging.New(level, "")
		}
	}
	file := cfg.Log.File
	if file == "" {
		var err error
		if file, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	return logging.New(level, file)
}

func (o *rootOptions) setup(interactive bool) (*env, error) {
	cfg, path, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := o.logger(cfg, interactive)
	if err != nil {
		return nil, err
	}

	cc := cfg.ClientConfig()
	cc.Logger = log
	return &env{
		cfg:     cfg,
		cfgPath: path,
		log:     log,
		client:  hn.NewClientWithConfig(cc),
	}, nil
}

// =============================================================================
// INTERACTIVE READER
// =============================================================================

func runReader(cmd *cobra.Command, opts *rootOptions) error {
	if err := RequiresTTY("start the reader"); err != nil {
		return err
	}
	e, err := opts.setup(true)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	if opts.feed != "" {
		feed, err := hn.ParseFeed(opts.feed)
		if err != nil {
			return NewValidationError("feed", opts.feed, err.Error())
		}
		e.cfg.UI.DefaultFeed = string(feed)
	}

	dark := styles.ResolveDark(e.cfg.UI.Theme)
	model := app.New(app.Options{
		Fetcher:    e.client,
		Config:     e.cfg,
		ConfigPath: e.cfgPath,
		Dark:       dark,
		PlainText:  opts.plain,
		Logger:     e.log,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go watchConfig(ctx, e, program)

	e.log.Info("reader started",
		zap.String("feed", e.cfg.UI.DefaultFeed),
		zap.String("api", e.client.BaseURL()),
		zap.Bool("dark", dark))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("reader failed: %w", err)
	}
	return nil
}

// watchConfig forwards config file changes to the running program.
func watchConfig(ctx context.Context, e *env, program *tea.Program) {
	if err := os.MkdirAll(filepath.Dir(e.cfgPath), 0700); err != nil {
		e.log.Warn("config watcher disabled", zap.Error(err))
		return
	}
	err := config.Watch(ctx, e.cfgPath, func(cfg *config.Config, err error) {
		if err != nil {
			e.log.Warn("config reload failed", zap.Error(err))
			return
		}
		program.Send(app.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		e.log.Warn("config watcher stopped", zap.Error(err))
	}
}
