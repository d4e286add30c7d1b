package main

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/glamour/v2"
	"github.com/mark3labs/selectr/internal/selectbox"
	"github.com/mark3labs/selectr/internal/tui"
	"github.com/spf13/cobra"
)

var keysFlags struct {
	raw   bool
	width int
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key binding reference",
	RunE:  runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&keysFlags.raw, "raw", false, "Print markdown without rendering")
	keysCmd.Flags().IntVar(&keysFlags.width, "width", 80, "Word wrap width")
}

func runKeys(cmd *cobra.Command, args []string) error {
	md := keysMarkdown()
	if keysFlags.raw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithWordWrap(keysFlags.width))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// keysMarkdown documents the bindings from the live key maps so the
// reference never drifts from the code.
func keysMarkdown() string {
	var b strings.Builder
	b.WriteString("# selectr keys\n\n")

	b.WriteString("## Dropdown\n\n")
	writeBindings(&b, slices.Concat(selectbox.DefaultKeyMap().FullHelp()...))
	b.WriteString("\nWhile the dropdown is open, typing filters the options by label. ")
	b.WriteString("Once typing has started, space is part of the search text.\n\n")

	app := tui.DefaultKeyMap()
	b.WriteString("## Picker\n\n")
	writeBindings(&b, []key.Binding{app.Press, app.NextFocus, app.Accept, app.Cancel, app.Quit})
	b.WriteString("\nEsc and q cancel only while the dropdown is closed.\n\n")

	b.WriteString("## Mouse\n\n")
	b.WriteString("| Target | Action |\n|---|---|\n")
	b.WriteString("| Value area or caret | open or close the dropdown |\n")
	b.WriteString("| Option row | pick the option and close |\n")
	b.WriteString("| Badge | remove that option |\n")
	b.WriteString("| × | clear the selection |\n")
	b.WriteString("| Search line | focus the search box |\n")
	b.WriteString("| Anywhere else | close the dropdown |\n")
	b.WriteString("| Wheel over the list | move the highlight |\n")
	return b.String()
}

func writeBindings(b *strings.Builder, bindings []key.Binding) {
	b.WriteString("| Keys | Action |\n|---|---|\n")
	for _, k := range bindings {
		keys := make([]string, len(k.Keys()))
		for i, name := range k.Keys() {
			keys[i] = "`" + name + "`"
		}
		fmt.Fprintf(b, "| %s | %s |\n", strings.Join(keys, ", "), k.Help().Desc)
	}
}
