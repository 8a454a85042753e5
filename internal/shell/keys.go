package shell

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Analyze    key.Binding
	Back       key.Binding
	Clear      key.Binding
	Up         key.Binding
	Down       key.Binding
	CopyID     key.Binding
	CopyAmount key.Binding
	Edit       key.Binding
	Reset      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "analyze"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "records"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		CopyID: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "copy id"),
		),
		CopyAmount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "copy amount"),
		),
		Edit: key.NewBinding(
			key.WithKeys("p", "e"),
			key.WithHelp("p", "paste"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) pasteHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Back, k.Clear, k.ForceQuit}
}

func (k keyMap) recordsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.CopyID, k.CopyAmount, k.Edit, k.Reset, k.Quit}
}
