package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Component is a region of the screen that draws itself into a rectangle.
type Component interface {
	Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor
	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
}

// DrawStyled renders content with style and draws it into area.
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, content string) {
	if area.Empty() {
		return
	}
	uv.NewStyledString(style.Render(content)).Draw(scr, area)
}
