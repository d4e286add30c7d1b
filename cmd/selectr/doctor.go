package main

import (
	"fmt"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/selectr/internal/config"
	"github.com/mark3labs/selectr/internal/options"
	"github.com/mark3labs/selectr/internal/tui/theme"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and environment",
	Long: `Check that selectr can run in this environment.

This command verifies that:
- The configuration loads and is valid
- The configured options file parses and has unique values
- The log file location is writable
- An editor is available for 'selectr options edit'
- Standard output is a terminal`,
	RunE: runDoctor,
}

// Theme colors (catppuccin mocha)
var (
	colorPrimary = lipgloss.Color(theme.Mocha.Primary)
	colorMuted   = lipgloss.Color(theme.Mocha.FgMuted)
	colorBase    = lipgloss.Color(theme.Mocha.FgBase)
	colorSuccess = lipgloss.Color(theme.Mocha.Success)
	colorWarning = lipgloss.Color(theme.Mocha.Warning)
	colorError   = lipgloss.Color(theme.Mocha.Error)
	colorBorder  = lipgloss.Color(theme.Mocha.Border)
)

const (
	statusOK   = "OK"
	statusWarn = "WARN"
	statusFail = "FAIL"
)

type checkResult struct {
	name    string
	status  string
	details string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	results := runChecks()

	allOk := true
	rows := make([][]string, len(results))
	for i, r := range results {
		var icon string
		switch r.status {
		case statusOK:
			icon = "✓"
		case statusFail:
			icon = "⊗"
			allOk = false
		case statusWarn:
			icon = "⊘"
		}
		rows[i] = []string{r.name, icon, r.details}
	}

	t := newTable([]string{"Check", "Status", "Details"}, rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle()
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 1 {
				switch results[row].status {
				case statusOK:
					return style.Foreground(colorSuccess)
				case statusFail:
					return style.Foreground(colorError)
				case statusWarn:
					return style.Foreground(colorWarning)
				}
			}
			if col == 0 {
				return style.Foreground(colorBase)
			}
			return style.Foreground(colorMuted)
		})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t)
	fmt.Fprintln(out)

	if allOk {
		fmt.Fprintln(out, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ All checks passed!"))
		return nil
	}
	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(colorError).Render("⊗ Some checks failed."))
	return fmt.Errorf("doctor check failed")
}

func runChecks() []checkResult {
	var results []checkResult

	cfg, err := config.Load()
	if err != nil {
		return append(results, checkResult{"config", statusFail, err.Error()})
	}
	if err := cfg.Validate(); err != nil {
		results = append(results, checkResult{"config", statusFail, err.Error()})
	} else {
		results = append(results, checkResult{"config", statusOK, "valid"})
	}

	results = append(results, checkOptions(cfg.OptionsFile))
	results = append(results, checkLogFile(cfg.LogFile))
	results = append(results, checkEditor())

	if isTerminal(os.Stdout) {
		results = append(results, checkResult{"terminal", statusOK, "stdout is a terminal"})
	} else {
		results = append(results, checkResult{"terminal", statusWarn, "stdout is not a terminal; pick output will not be highlighted"})
	}
	return results
}

func checkOptions(path string) checkResult {
	if path == "" {
		return checkResult{"options", statusOK, "using built-in demo options"}
	}
	opts, err := options.Load(path)
	if err != nil {
		return checkResult{"options", statusFail, err.Error()}
	}
	return checkResult{"options", statusOK, fmt.Sprintf("%d options in %s", len(opts), path)}
}

func checkLogFile(path string) checkResult {
	if path == "" {
		return checkResult{"log file", statusOK, "logging disabled"}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return checkResult{"log file", statusFail, err.Error()}
	}
	f, err := os.CreateTemp(dir, ".selectr-doctor-*")
	if err != nil {
		return checkResult{"log file", statusFail, fmt.Sprintf("%s is not writable", dir)}
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return checkResult{"log file", statusOK, path}
}

func checkEditor() checkResult {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(env); v != "" {
			return checkResult{"editor", statusOK, fmt.Sprintf("%s=%s", env, v)}
		}
	}
	return checkResult{"editor", statusWarn, "$EDITOR not set; 'options edit' falls back to the system default"}
}
