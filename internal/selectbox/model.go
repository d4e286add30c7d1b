package selectbox

import (
	"fmt"
	"slices"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/tui/theme"
)

const (
	defaultWidth      = 40
	minWidth          = 16
	defaultMaxVisible = 8
)

// Model is the dropdown select component.
type Model struct {
	options []Option
	mode    Mode
	keyMap  KeyMap
	styles  Styles
	search  textinput.Model

	open          bool // Dropdown visible
	highlighted   int  // Index into Filtered()
	offset        int  // First visible row
	focused       bool // Container (or its search box) holds focus
	searchFocused bool // Keystrokes go to the search box

	width             int
	height            int
	maxVisible        int
	placeholder       string
	resetSearchOnOpen bool
	origin            uv.Position // Screen cell of the top-left corner
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) { m.keyMap = k }
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) ModelOption {
	return func(m *Model) { m.styles = s }
}

// WithMaxVisible limits the number of option rows shown at once.
func WithMaxVisible(n int) ModelOption {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithPlaceholder sets the text shown when nothing is selected.
func WithPlaceholder(s string) ModelOption {
	return func(m *Model) { m.placeholder = s }
}

// WithResetSearchOnOpen clears the search text every time the dropdown opens.
// By default the search text survives closing and reopening.
func WithResetSearchOnOpen(v bool) ModelOption {
	return func(m *Model) { m.resetSearchOnOpen = v }
}

// WithWidth sets the rendered width in cells.
func WithWidth(w int) ModelOption {
	return func(m *Model) { m.SetSize(w, m.height) }
}

// New creates a component over options in the given mode. The option list is
// validated with ValidateOptions and mode must be Single or Multiple.
func New(options []Option, mode Mode, opts ...ModelOption) (*Model, error) {
	if mode == nil {
		return nil, fmt.Errorf("selection mode is required: %w", apperrors.ErrModeMismatch)
	}
	if err := ValidateOptions(options); err != nil {
		return nil, err
	}
	if md, ok := mode.(Multiple); ok {
		if err := validateSelection(md.Value); err != nil {
			return nil, err
		}
	}

	search := textinput.New()
	search.Placeholder = "Search..."
	search.Prompt = ""
	t := theme.Current()
	search.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})

	m := &Model{
		options:     slices.Clone(options),
		mode:        clone(mode),
		keyMap:      DefaultKeyMap(),
		styles:      DefaultStyles(t),
		search:      search,
		maxVisible:  defaultMaxVisible,
		placeholder: "Select...",
	}
	m.SetSize(defaultWidth, 0)
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Init implements the component lifecycle; there is nothing to start.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize sets the rendered width and the height available to the
// component. A height of 0 means unconstrained.
func (m *Model) SetSize(width, height int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	m.height = height
	// Search line: icon (2 cells) + input + cursor cell.
	m.search.SetWidth(width - 3)
	m.ensureVisible()
}

// SetOrigin records the screen cell where the component's top-left corner is
// drawn, so mouse coordinates can be mapped onto it.
func (m *Model) SetOrigin(x, y int) {
	m.origin = uv.Position{X: x, Y: y}
}

// Focus gives keyboard focus to the component.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur removes focus. An open dropdown closes.
func (m *Model) Blur() {
	m.focused = false
	m.setOpen(false)
}

// Focused reports whether the component has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

// KeyMap returns the active key bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keyMap
}

// IsOpen reports whether the dropdown list is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Highlighted returns the highlighted index into Filtered().
func (m *Model) Highlighted() int {
	return m.highlighted
}

// SearchTerm returns the current search text.
func (m *Model) SearchTerm() string {
	return m.search.Value()
}

// SearchFocused reports whether typed text goes to the search box.
func (m *Model) SearchFocused() bool {
	return m.searchFocused
}

// Options returns the option list.
func (m *Model) Options() []Option {
	return slices.Clone(m.options)
}

// Filtered returns the options matching the current search text.
func (m *Model) Filtered() []Option {
	return Filter(m.options, m.search.Value())
}

// IsMultiple reports whether the component is in Multiple mode.
func (m *Model) IsMultiple() bool {
	_, ok := m.mode.(Multiple)
	return ok
}

// Selected returns the current value as a slice: zero or one element in
// Single mode, the selection in order in Multiple mode.
func (m *Model) Selected() []Option {
	switch md := m.mode.(type) {
	case Single:
		if md.Value == nil {
			return nil
		}
		return []Option{*md.Value}
	case Multiple:
		return slices.Clone(md.Value)
	}
	return nil
}

// SetOptions replaces the option list. The highlight is clamped to the new
// filtered list.
func (m *Model) SetOptions(options []Option) error {
	if err := ValidateOptions(options); err != nil {
		return err
	}
	m.options = slices.Clone(options)
	m.clampHighlight()
	return nil
}

// SetSingleValue replaces the value of a Single-mode component.
func (m *Model) SetSingleValue(v *Option) error {
	md, ok := m.mode.(Single)
	if !ok {
		return fmt.Errorf("set single value: %w", apperrors.ErrModeMismatch)
	}
	md.Value = v
	m.mode = clone(md)
	return nil
}

// SetMultipleValue replaces the value of a Multiple-mode component.
func (m *Model) SetMultipleValue(v []Option) error {
	md, ok := m.mode.(Multiple)
	if !ok {
		return fmt.Errorf("set multiple value: %w", apperrors.ErrModeMismatch)
	}
	if err := validateSelection(v); err != nil {
		return err
	}
	md.Value = v
	m.mode = clone(md)
	return nil
}

// PreferredHeight returns the number of lines the component renders in its
// current state.
func (m *Model) PreferredHeight() int {
	if !m.open {
		return 1
	}
	return 2 + max(1, min(len(m.Filtered()), m.visibleRows()))
}

// setOpen performs the open/closed transition. Opening always resets the
// highlight to the first row.
func (m *Model) setOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.highlighted = 0
		m.offset = 0
		if m.resetSearchOnOpen {
			m.search.SetValue("")
		}
		logger.Debug("dropdown opened (%d options, search %q)", len(m.options), m.search.Value())
		return
	}
	m.blurSearch()
	logger.Debug("dropdown closed")
}

func (m *Model) visibleRows() int {
	rows := m.maxVisible
	if m.height > 2 && m.height-2 < rows {
		rows = m.height - 2
	}
	return max(rows, 1)
}

// move shifts the highlight by delta, clamped to the filtered list.
func (m *Model) move(delta int) {
	m.moveTo(m.highlighted + delta)
}

func (m *Model) moveTo(i int) {
	m.highlighted = i
	m.clampHighlight()
}

func (m *Model) clampHighlight() {
	n := len(m.Filtered())
	if m.highlighted > n-1 {
		m.highlighted = n - 1
	}
	if m.highlighted < 0 {
		m.highlighted = 0
	}
	m.ensureVisible()
}

// ensureVisible scrolls the row window so the highlighted row is shown.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if m.highlighted < m.offset {
		m.offset = m.highlighted
	}
	if m.highlighted >= m.offset+rows {
		m.offset = m.highlighted - rows + 1
	}
	if n := len(m.Filtered()); m.offset > max(n-rows, 0) {
		m.offset = max(n-rows, 0)
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
