package selectbox

import (
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/selectr/internal/tui/theme"
)

// Styles controls the look of the component. Styles must not add borders,
// margins or vertical padding: click targets are computed from the rendered
// cell widths of each line.
type Styles struct {
	Value          lipgloss.Style
	Placeholder    lipgloss.Style
	Badge          lipgloss.Style
	BadgeRemove    lipgloss.Style
	Overflow       lipgloss.Style
	Clear          lipgloss.Style
	Caret          lipgloss.Style
	CaretFocused   lipgloss.Style
	SearchIcon     lipgloss.Style
	Row            lipgloss.Style
	RowHighlighted lipgloss.Style
	Check          lipgloss.Style
	CheckSelected  lipgloss.Style
	Avatar         lipgloss.Style
	Empty          lipgloss.Style
}

// DefaultStyles builds styles from the given theme.
func DefaultStyles(t *theme.Theme) Styles {
	c := lipgloss.Color
	return Styles{
		Value:          lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Placeholder:    lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Italic(true),
		Badge:          lipgloss.NewStyle().Foreground(c(t.FgBase)).Background(c(t.BgSurface)).Padding(0, 1),
		BadgeRemove:    lipgloss.NewStyle().Foreground(c(t.Error)).Background(c(t.BgSurface)),
		Overflow:       lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Clear:          lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Caret:          lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		CaretFocused:   lipgloss.NewStyle().Foreground(c(t.Primary)),
		SearchIcon:     lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		Row:            lipgloss.NewStyle().Foreground(c(t.FgBase)),
		RowHighlighted: lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Secondary)).Bold(true),
		Check:          lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		CheckSelected:  lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),
		Avatar:         lipgloss.NewStyle().Foreground(c(t.Warning)),
		Empty:          lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Italic(true),
	}
}
