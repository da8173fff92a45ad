package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Accept: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y/enter", "import"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "skip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
