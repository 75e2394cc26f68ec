package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	LockIn key.Binding
	Unlock key.Binding
	Title  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move"),
		),
		LockIn: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Unlock: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to menu"),
		),
		Title: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle title"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpFor renders the footer hint row for the current input mode.
func (k keyMap) helpFor(lockedIn bool) string {
	if lockedIn {
		return "Use ↓↑ to scroll, Esc to return to the menu"
	}
	return "Use ↓↑ to move, Enter to lock in"
}
