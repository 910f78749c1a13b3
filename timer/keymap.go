package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	complete key.Binding
	skip     key.Binding
	back     key.Binding
	tab      key.Binding
	quit     key.Binding
	confirm  key.Binding
	cancel   key.Binding
}

var defaultKeymap = keymap{
	complete: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "set done"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip rest"),
	),
	back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "end workout"),
	),
	cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "keep going"),
	),
}
