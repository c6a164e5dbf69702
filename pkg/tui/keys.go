package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Focus       key.Binding
	Open        key.Binding
	Back        key.Binding
	Add         key.Binding
	AddSubTask  key.Binding
	Rename      key.Binding
	Delete      key.Binding
	Complete    key.Binding
	UrgencyUp   key.Binding
	UrgencyDown key.Binding
	Expand      key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch column")),
		Open:        key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		AddSubTask:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add subtask")),
		Rename:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Complete:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "complete")),
		UrgencyUp:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "urgency up")),
		UrgencyDown: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "urgency down")),
		Expand:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "subtasks")),
		MoveUp:      key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Add, k.Rename, k.Delete, k.Complete, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Open, k.Back},
		{k.Add, k.AddSubTask, k.Rename, k.Delete},
		{k.Complete, k.UrgencyUp, k.UrgencyDown, k.Expand},
		{k.MoveUp, k.MoveDown, k.Theme, k.Help, k.Quit},
	}
}
