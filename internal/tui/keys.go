package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the application-level bindings. Keys not listed here go to
// the focused component.
type KeyMap struct {
	Accept    key.Binding
	Press     key.Binding
	NextFocus key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default application bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
		Press:     key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "press")),
		NextFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Accept, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Press, k.NextFocus}, {k.Accept, k.Cancel, k.Quit}}
}
