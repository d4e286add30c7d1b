package main

import (
	"fmt"

	"github.com/mark3labs/selectr/internal/config"
	"github.com/spf13/cobra"
)

var initFlags struct {
	project bool
	force   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create selectr configuration file",
	Long: `Create a selectr configuration file with sensible defaults.

By default, creates a global config at ~/.config/selectr/selectr.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	write := config.WriteGlobal
	if initFlags.project {
		targetPath = config.ProjectPath()
		write = config.WriteProject
	}

	if !initFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	if err := write(config.Defaults()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(out, "Run 'selectr pick' to get started.")
	return nil
}
