package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/selectr/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	Long: `Display the current resolved configuration showing values from all sources.

Configuration precedence (highest to lowest):
  1. Environment variables (SELECTR_*)
  2. Project config (./selectr.yml)
  3. Global config (~/.config/selectr/selectr.yml)
  4. Defaults`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out := cmd.OutOrStdout()

	globalPath := config.GlobalPath()
	projectPath := config.ProjectPath()
	absProjectPath, err := filepath.Abs(projectPath)
	if err != nil {
		absProjectPath = projectPath
	}
	globalExists := fileExists(globalPath)
	projectExists := fileExists(projectPath)

	configRows := make([][]string, 0, len(config.Keys))
	for _, key := range config.Keys {
		configRows = append(configRows, []string{key, cfg.Value(key)})
	}

	titleStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	fmt.Fprintln(out, titleStyle.Render("Configuration"))
	fmt.Fprintln(out, keyValueTable([]string{"Key", "Value"}, configRows))
	fmt.Fprintln(out)

	fileRows := [][]string{
		fileRow("Global", globalPath, globalExists),
		fileRow("Project", absProjectPath, projectExists),
	}
	filesTable := newTable([]string{"Type", "Path", "Status"}, fileRows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle()
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 2 {
				if row < len(fileRows) && fileRows[row][2] == "✓" {
					return style.Foreground(colorSuccess)
				}
				return style.Foreground(colorWarning)
			}
			if col == 0 {
				return style.Foreground(colorBase)
			}
			return style.Foreground(colorMuted)
		})
	fmt.Fprintln(out, titleStyle.Render("Config Files"))
	fmt.Fprintln(out, filesTable)

	var envRows [][]string
	for _, key := range config.Keys {
		name := config.EnvName(key)
		if val := os.Getenv(name); val != "" {
			envRows = append(envRows, []string{name, val})
		}
	}
	if len(envRows) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render("Environment Overrides"))
		fmt.Fprintln(out, keyValueTable([]string{"Variable", "Value"}, envRows))
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, lipgloss.NewStyle().Foreground(colorError).Render("Invalid configuration: "+err.Error()))
	}

	if !globalExists && !projectExists {
		printNote(out, "No config files found. Run 'selectr init' to create one.")
	}
	return nil
}

func fileRow(kind, path string, exists bool) []string {
	if exists {
		return []string{kind, path, "✓"}
	}
	return []string{kind, path, "not found"}
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...)
}

// keyValueTable renders a two-column table with the key column emphasized.
func keyValueTable(headers []string, rows [][]string) *table.Table {
	return newTable(headers, rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle()
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 0 {
				return style.Foreground(colorBase)
			}
			return style.Foreground(colorMuted)
		})
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Padding(0, 1)
}

func printNote(w io.Writer, msg string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(colorWarning).Render(msg))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
