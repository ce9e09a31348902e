package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Open   key.Binding
	Parent key.Binding
	All    key.Binding
	Clear  key.Binding
	Reload key.Binding
	Done   key.Binding
	Abort  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Select: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/confirm")),
	Parent: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "parent dir")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Done:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	Abort:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Open, k.All, k.Clear, k.Reload, k.Done}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Open, k.Parent},
		{k.All, k.Clear, k.Reload, k.Done, k.Abort},
	}
}
