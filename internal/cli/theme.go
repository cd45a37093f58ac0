// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makwanadeepam/newhackernews/internal/config"
	"github.com/makwanadeepam/newhackernews/internal/ui/styles"
)

func newThemeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|auto|toggle]",
		Short:     "Show or set the color theme",
		Long:      "Without an argument, print the configured theme. A running reader picks up changes immediately.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{config.ThemeDark, config.ThemeLight, config.ThemeAuto, "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, root, args)
		},
	}
}

func runTheme(cmd *cobra.Command, root *rootOptions, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		cfg, _, err := root.loadConfig()
		if err != nil {
			return err
		}
		theme := cfg.UI.Theme
		if theme == config.ThemeAuto {
			theme += " (" + variant(styles.ResolveDark(theme)) + ")"
		}
		fmt.Fprintln(out, RenderKeyValue("theme", theme))
		return nil
	}

	cfg, path, err := root.loadFileConfig()
	if err != nil {
		return err
	}
	switch arg := strings.ToLower(args[0]); arg {
	case config.ThemeDark, config.ThemeLight, config.ThemeAuto:
		cfg.UI.Theme = arg
	case "toggle":
		cfg.SetDark(!styles.ResolveDark(cfg.UI.Theme))
	default:
		return NewValidationErrorWithExample("theme", args[0], "want dark, light, auto or toggle", "newhn theme toggle")
	}

	if err := config.SaveTo(cfg, path); err != nil {
		return err
	}
	fmt.Fprintln(out, SuccessStyle.Render("Theme set to "+cfg.UI.Theme))
	return nil
}

func variant(dark bool) string {
	if dark {
		return config.ThemeDark
	}
	return config.ThemeLight
}
