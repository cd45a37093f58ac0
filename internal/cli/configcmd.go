// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makwanadeepam/newhackernews/internal/config"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	var jsonMode bool

	show := func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd, root, jsonMode)
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the configuration",
		Args:  cobra.NoArgs,
		RunE:  show,
	}
	cmd.PersistentFlags().BoolVar(&jsonMode, "json", false, "print JSON")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print every setting",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := root.resolveConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set <key> <value>",
			Short:   "Change one setting",
			Example: "  newhn config set ui.default_feed best\n  newhn config set api.requests_per_second 10",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(cmd, root, args[0], args[1])
			},
		},
	)
	return cmd
}

func runConfigShow(cmd *cobra.Command, root *rootOptions, jsonMode bool) error {
	cfg, path, err := root.loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	return OutputJSON(out, jsonMode, "config", func() (any, error) {
		values := make(map[string]string, len(config.Keys()))
		for _, key := range config.Keys() {
			v, err := cfg.Get(key)
			if err != nil {
				return nil, err
			}
			values[key] = v
		}
		if !jsonMode {
			fmt.Fprintln(out, TitleStyle.Render("Configuration")+"  "+DimStyle.Render(path))
			fmt.Fprintln(out, RenderSeparator(GetTerminalWidth()/2))
			for _, key := range config.Keys() {
				fmt.Fprintln(out, RenderKeyValue(key, values[key]))
			}
		}
		return values, nil
	})
}

func runConfigSet(cmd *cobra.Command, root *rootOptions, key, value string) error {
	cfg, path, err := root.loadFileConfig()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return NewValidationError(key, value, err.Error())
	}
	if err := config.SaveTo(cfg, path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
