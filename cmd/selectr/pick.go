package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/selectr/internal/config"
	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/options"
	"github.com/mark3labs/selectr/internal/selectbox"
	"github.com/mark3labs/selectr/internal/tui"
	"github.com/spf13/cobra"
)

var pickFlags struct {
	multiple    bool
	optionsFile string
	values      []string
	format      string
	template    string
	history     bool
	title       string
	placeholder string
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick options interactively",
	Long: `Open the dropdown picker full-screen and print the picked value when done.

Options are read from --options, the options_file config key, or the
built-in demo list, in that order. Use --value (repeatable) to preselect
options by value.

Keys: enter/space open the dropdown and pick the highlighted option, type to
filter, tab moves between the picker and the Done button, ctrl+s finishes,
esc or q cancels.`,
	Example: `  selectr pick --multiple
  selectr pick --options people.yml --value 2 --format json
  selectr pick -m --template '{{index}}. {{label}}'`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVarP(&pickFlags.multiple, "multiple", "m", false, "Allow selecting several options (default from config)")
	pickCmd.Flags().StringVarP(&pickFlags.optionsFile, "options", "o", "", "YAML or JSON options file")
	pickCmd.Flags().StringArrayVarP(&pickFlags.values, "value", "v", nil, "Preselect the option with this value (repeatable)")
	pickCmd.Flags().StringVarP(&pickFlags.format, "format", "f", formatText, "Output format: text, json or yaml")
	pickCmd.Flags().StringVarP(&pickFlags.template, "template", "t", "", "Line template for text output, e.g. '{{value}}: {{label}}'")
	pickCmd.Flags().BoolVar(&pickFlags.history, "history", false, "Print the change history to stderr")
	pickCmd.Flags().StringVar(&pickFlags.title, "title", "", "Title shown above the picker")
	pickCmd.Flags().StringVar(&pickFlags.placeholder, "placeholder", "", "Text shown when nothing is selected (default from config)")
}

func runPick(cmd *cobra.Command, args []string) error {
	if !validFormat(pickFlags.format) {
		return apperrors.NewValidationError("format", pickFlags.format, "must be one of text, json, yaml")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	multiple := cfg.Multiple
	if cmd.Flags().Changed("multiple") {
		multiple = pickFlags.multiple
	}
	placeholder := cfg.Placeholder
	if pickFlags.placeholder != "" {
		placeholder = pickFlags.placeholder
	}

	items, err := loadItems(pickFlags.optionsFile, cfg.OptionsFile)
	if err != nil {
		return err
	}
	value, err := options.Find(items, pickFlags.values)
	if err != nil {
		return fmt.Errorf("invalid --value: %w", err)
	}

	res, err := apperrors.RecoverWithResult(func() (*tui.Result, error) {
		return tui.Run(cmd.Context(), tui.Options{
			Title:             pickFlags.title,
			Items:             items,
			Multiple:          multiple,
			Value:             value,
			Placeholder:       placeholder,
			MaxVisible:        cfg.MaxVisible,
			ResetSearchOnOpen: cfg.ResetSearchOnOpen,
		})
	})
	if res != nil && pickFlags.history {
		if herr := writeHistory(cmd.ErrOrStderr(), res.History, isTerminal(os.Stderr), cfg.Theme); herr != nil {
			logger.Warn("Failed to write history: %v", herr)
		}
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrCancelled) {
			logger.Info("Pick cancelled")
		}
		return err
	}

	out, err := formatResult(res.Value, multiple, pickFlags.format, pickFlags.template)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), out, pickFlags.format, isTerminal(os.Stdout), cfg.Theme)
}

// loadItems resolves the option source: the flag, then config, then the
// demo list.
func loadItems(flagPath, cfgPath string) ([]selectbox.Option, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		logger.Debug("No options file configured, using demo options")
		return options.Demo(), nil
	}
	items, err := options.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}
	return items, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
