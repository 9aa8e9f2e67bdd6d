package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the tag-pane key bindings.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	SelectAll    key.Binding
	Remove       key.Binding
	Disable      key.Binding
	Toggle       key.Binding
	WeightUp     key.Binding
	WeightDown   key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	Insert       key.Binding
	SwitchPane   key.Binding
	ToggleHelp   key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Disable:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disable selected")),
		Toggle:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable/disable")),
		WeightUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "weight up")),
		WeightDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "weight down")),
		MoveUp:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Insert:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert tag")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Select, k.Toggle, k.WeightUp, k.WeightDown, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Select, k.SelectAll, k.Remove, k.Disable, k.Toggle},
		{k.WeightUp, k.WeightDown, k.Insert},
		{k.SwitchPane, k.ToggleHelp, k.Quit},
	}
}
