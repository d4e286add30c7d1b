package selectbox

import "charm.land/bubbles/v2/key"

// KeyMap defines the key bindings of the component.
type KeyMap struct {
	Confirm     key.Binding // open when closed, select highlighted when open
	Toggle      key.Binding // like Confirm unless the search box is focused
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Close       key.Binding
	SwitchFocus key.Binding // move between the container and the search box
	Clear       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/select")),
		Toggle:      key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "open/select")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "search")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Up, k.Down, k.Close, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Toggle, k.Close, k.Clear},
		{k.Up, k.Down, k.Home, k.End, k.PageUp, k.PageDown},
		{k.SwitchFocus},
	}
}
