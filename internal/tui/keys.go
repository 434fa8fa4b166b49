package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Interrupt key.Binding
	Enter     key.Binding
	Complete  key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

var Keys = KeyMap{
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "clear/quit")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Complete:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "scroll up")),
	Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "scroll down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
}

func (k KeyMap) hints() string {
	return k.Complete.Help().Key + " " + k.Complete.Help().Desc + "  " +
		k.Interrupt.Help().Key + " " + k.Interrupt.Help().Desc + "  " +
		":u undo  :q quit  :[pr!] filter"
}
