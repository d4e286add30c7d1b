package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/selectr/internal/tui/theme"
)

// Footer renders the bottom bar with key hints for the focused component on
// the left and the application keys on the right.
type Footer struct {
	width int
	local []key.Binding
	app   []key.Binding
	help  help.Model
}

// NewFooter creates a new Footer component.
func NewFooter(app []key.Binding) *Footer {
	h := help.New()
	s := theme.Current().S()
	h.Styles.ShortKey = s.FooterKey
	h.Styles.ShortDesc = s.FooterLabel
	h.Styles.ShortSeparator = s.Subtle
	h.Styles.Ellipsis = s.Subtle
	return &Footer{app: app, help: h}
}

// Draw renders the footer to the screen at the given area.
// Returns nil cursor since footer is non-interactive.
func (f *Footer) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	DrawStyled(scr, area, lipgloss.NewStyle(), f.buildFooterContent(area.Dx()))
	return nil
}

// buildFooterContent lays out "[key]label" hints across the available width.
func (f *Footer) buildFooterContent(availableWidth int) string {
	left := strings.Join(hints(f.local), "  ")
	right := strings.Join(hints(f.app), "  ")

	padding := availableWidth - lipgloss.Width(left) - lipgloss.Width(right) - 2 // -2 for side padding
	if padding < 2 {
		padding = 2
	}
	content := " " + left + strings.Repeat(" ", padding) + right

	if lipgloss.Width(content) > availableWidth {
		content = f.buildCondensedContent(availableWidth)
	}
	return content
}

// buildCondensedContent falls back to the help bubble, which truncates with
// an ellipsis.
func (f *Footer) buildCondensedContent(availableWidth int) string {
	f.help.SetWidth(availableWidth)
	return f.help.ShortHelpView(append(append([]key.Binding{}, f.app...), f.local...))
}

func hints(bindings []key.Binding) []string {
	s := theme.Current().S()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, s.FooterKey.Render("["+h.Key+"]")+s.FooterLabel.Render(h.Desc))
	}
	return parts
}

// SetSize updates the footer width.
func (f *Footer) SetSize(width, height int) {
	f.width = width
}

// SetBindings replaces the hints of the focused component.
func (f *Footer) SetBindings(bindings []key.Binding) {
	f.local = bindings
}

// Update handles messages. Footer is static.
func (f *Footer) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// Compile-time interface check
var _ Component = (*Footer)(nil)
