package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mark3labs/selectr/internal/selectbox"
	"github.com/mark3labs/selectr/internal/template"
	"github.com/mark3labs/selectr/internal/tui"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// formatResult renders the picked value. Text output is one line per option
// rendered from tmpl. Structured output is an object (or null) in single mode
// and an array in multiple mode.
func formatResult(value []selectbox.Option, multiple bool, format, tmpl string) (string, error) {
	var v any = value
	if !multiple {
		if len(value) == 0 {
			v = nil
		} else {
			v = value[0]
		}
	} else if value == nil {
		v = []selectbox.Option{}
	}

	switch format {
	case formatText:
		if tmpl == "" {
			tmpl = template.DefaultTemplate
		}
		return template.RenderAll(tmpl, value), nil
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(data) + "\n", nil
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// writeResult writes out, syntax-highlighted when color is set and the format
// has a grammar.
func writeResult(w io.Writer, out, format string, color bool, themeName string) error {
	if !color || format == formatText {
		_, err := io.WriteString(w, out)
		return err
	}
	return highlight(w, out, format, themeName)
}

// writeHistory prints every change as a unified diff.
func writeHistory(w io.Writer, entries []tui.Entry, color bool, themeName string) error {
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "# change %d at %s: %s\n", i+1, e.At.Format(time.TimeOnly), e.Summary()); err != nil {
			return err
		}
		if e.Diff == "" {
			continue
		}
		var err error
		if color {
			err = highlight(w, e.Diff, "diff", themeName)
		} else {
			_, err = io.WriteString(w, e.Diff)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func highlight(w io.Writer, source, lexer, themeName string) error {
	if err := quick.Highlight(w, source, lexer, "terminal256", "catppuccin-"+themeName); err != nil {
		return fmt.Errorf("failed to highlight output: %w", err)
	}
	return nil
}
