package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/selectr/internal/config"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/tui/theme"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
	)
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "selectr",
	Short: "Interactive dropdown picker for the terminal",
	Long: `selectr shows a searchable dropdown of options in the terminal and prints
what was picked.

It supports single and multiple selection, keyboard and mouse navigation and
filtering by label. Options come from a YAML or JSON file, or from the
built-in demo list.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupRuntime loads the configuration and applies its logging and theme
// settings before any command runs.
func setupRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if !theme.SetCurrent(cfg.Theme) {
		logger.Warn("Unknown theme %q, using %s", cfg.Theme, theme.Current().Name)
	}
	logger.Debug("Running %s (version %s)", cmd.CommandPath(), version)
	return nil
}
