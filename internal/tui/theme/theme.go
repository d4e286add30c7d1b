// Package theme holds the color palettes and shared lipgloss styles.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme is a named color palette. Colors are hex strings so callers can pass
// them to lipgloss.Color.
type Theme struct {
	Name string

	Primary   string
	Secondary string
	FgBase    string
	FgMuted   string
	FgSubtle  string
	BgBase    string
	BgSurface string
	BgOverlay string
	Border    string
	Success   string
	Warning   string
	Error     string

	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalLabel     lipgloss.Style
	ModalValue     lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	FooterKey   lipgloss.Style
	FooterLabel lipgloss.Style
}

// Mocha is the default dark palette (catppuccin mocha).
var Mocha = &Theme{
	Name:      "mocha",
	Primary:   "#cba6f7", // Mauve
	Secondary: "#b4befe", // Lavender
	FgBase:    "#cdd6f4", // Text
	FgMuted:   "#a6adc8", // Subtext0
	FgSubtle:  "#6c7086", // Overlay0
	BgBase:    "#1e1e2e", // Base
	BgSurface: "#313244", // Surface0
	BgOverlay: "#45475a", // Surface1
	Border:    "#585b70", // Surface2
	Success:   "#a6e3a1", // Green
	Warning:   "#f9e2af", // Yellow
	Error:     "#f38ba8", // Red
}

// Latte is the light palette (catppuccin latte).
var Latte = &Theme{
	Name:      "latte",
	Primary:   "#8839ef",
	Secondary: "#7287fd",
	FgBase:    "#4c4f69",
	FgMuted:   "#6c6f85",
	FgSubtle:  "#9ca0b0",
	BgBase:    "#eff1f5",
	BgSurface: "#ccd0da",
	BgOverlay: "#bcc0cc",
	Border:    "#acb0be",
	Success:   "#40a02b",
	Warning:   "#df8e1d",
	Error:     "#d20f39",
}

var (
	mu      sync.RWMutex
	current = Mocha
)

// Current returns the active theme.
func Current() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent activates the theme with the given name. Unknown names leave the
// active theme unchanged and return false.
func SetCurrent(name string) bool {
	t := ByName(name)
	if t == nil {
		return false
	}
	mu.Lock()
	current = t
	mu.Unlock()
	return true
}

// ByName returns the theme with the given name, or nil.
func ByName(name string) *Theme {
	switch name {
	case Mocha.Name:
		return Mocha
	case Latte.Name:
		return Latte
	}
	return nil
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	mu.Lock()
	defer mu.Unlock()
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		Base:   lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted:  lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Subtle: lipgloss.NewStyle().Foreground(c(t.FgSubtle)),

		Title:   lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(c(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(c(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(c(t.Error)),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Primary)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		ModalLabel: lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		ModalValue: lipgloss.NewStyle().Foreground(c(t.FgBase)),

		Button: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface)).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Bold(true).
			Padding(0, 2),

		FooterKey:   lipgloss.NewStyle().Foreground(c(t.Secondary)).Bold(true),
		FooterLabel: lipgloss.NewStyle().Foreground(c(t.FgMuted)),
	}
}
