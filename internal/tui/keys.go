package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit   key.Binding
	sync   key.Binding
	pause  key.Binding
	resume key.Binding
	info   key.Binding
	esc    key.Binding
}

var keys = keyMap{
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:   key.NewBinding(key.WithKeys("s")),
	pause:  key.NewBinding(key.WithKeys("p")),
	resume: key.NewBinding(key.WithKeys("r")),
	info:   key.NewBinding(key.WithKeys("i")),
	esc:    key.NewBinding(key.WithKeys("esc", "enter")),
}
