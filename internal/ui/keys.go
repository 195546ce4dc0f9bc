package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/pixelmenu/internal/input"
)

type buttonBinding struct {
	binding key.Binding
	button  input.Button
}

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Primary   key.Binding
	Secondary key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Primary:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Secondary: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "secondary")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) buttons() []buttonBinding {
	return []buttonBinding{
		{k.Up, input.ButtonUp},
		{k.Down, input.ButtonDown},
		{k.Left, input.ButtonLeft},
		{k.Right, input.ButtonRight},
		{k.Primary, input.ButtonPrimary},
		{k.Secondary, input.ButtonSecondary},
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Primary, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Primary, k.Secondary},
		{k.Help, k.Quit},
	}
}
