package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Capture     key.Binding
	CaptureNote key.Binding
	Gallery     key.Binding
	Theme       key.Binding
	Quit        key.Binding

	Delete key.Binding
	Close  key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Capture: key.NewBinding(
		key.WithKeys("c", " "),
		key.WithHelp("c", "capture"),
	),
	CaptureNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "capture with note"),
	),
	Gallery: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "gallery"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "delete"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "g", "q"),
		key.WithHelp("esc", "close"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "capture"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
