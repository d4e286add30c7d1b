package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/selectr/internal/config"
	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/options"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Manage option files",
	Long: `Create, edit and check option files.

An option file is a YAML or JSON list of entries with a label, a value and an
optional avatar_img. Values must be unique strings or numbers.`,
}

var optionsEditCmd = &cobra.Command{
	Use:   "edit [FILE]",
	Short: "Edit an options file in $EDITOR",
	Long: `Open an options file in $EDITOR and validate it afterwards.

Without FILE the options_file config key is used. A missing file is created
from the demo options first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptionsEdit,
}

var optionsCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate an options file",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptionsCheck,
}

func init() {
	optionsCmd.AddCommand(optionsEditCmd)
	optionsCmd.AddCommand(optionsCheckCmd)
}

func runOptionsEdit(cmd *cobra.Command, args []string) error {
	path, err := optionsPath(args)
	if err != nil {
		return err
	}

	if !fileExists(path) {
		logger.Info("Seeding %s with demo options", path)
		if err := options.Save(path, options.Demo()); err != nil {
			return err
		}
	}

	c, err := editor.Cmd("selectr", path)
	if err != nil {
		return fmt.Errorf("failed to prepare editor: %w", err)
	}
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	return runOptionsCheck(cmd, []string{path})
}

func runOptionsCheck(cmd *cobra.Command, args []string) error {
	opts, err := options.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d options\n", args[0], len(opts))
	return nil
}

func optionsPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.OptionsFile == "" {
		return "", apperrors.NewValidationError("options_file", "", "no file given and options_file is not configured")
	}
	return cfg.OptionsFile, nil
}
