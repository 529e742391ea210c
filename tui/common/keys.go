package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit       key.Binding
	Refresh    key.Binding // r — get new jokes
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Upvote     key.Binding
	Downvote   key.Binding
	More       key.Binding // ] — collect one more joke per run
	Fewer      key.Binding // [ — collect one fewer joke per run
	ToggleHelp key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new jokes"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u", "+", "=", "right", "l"),
			key.WithHelp("u/+", "upvote"),
		),
		Downvote: key.NewBinding(
			key.WithKeys("d", "-", "left", "h"),
			key.WithHelp("d/-", "downvote"),
		),
		More: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more jokes"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer jokes"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "all keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Upvote, k.Downvote, k.Refresh, k.Quit, k.ToggleHelp}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Upvote, k.Downvote},
		{k.Refresh, k.More, k.Fewer},
		{k.ToggleHelp, k.Quit},
	}
}
