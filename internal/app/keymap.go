package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings used across the dashboard. Panel shortcuts
// are single letters matching the panel's first letter; popup sub-panel
// shortcuts reuse c/v/m inside the popup only.
type KeyMap struct {
	Quit  key.Binding
	Close key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Main-screen panel shortcuts.
	FocusBranches key.Binding // b
	FocusCommits  key.Binding // c
	FocusDetails  key.Binding // d
	FocusStashes  key.Binding // s
	OpenPopup     key.Binding // l

	// Branch actions.
	NewBranch    key.Binding // a
	DeleteBranch key.Binding // x, delete
	Update       key.Binding // u (fetch + pull)
	Push         key.Binding // p

	// Popup sub-panel shortcuts and change actions.
	SubChanges key.Binding // c
	SubViewer  key.Binding // v
	SubMessage key.Binding // m
	Discard    key.Binding // x
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),

		FocusBranches: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branches")),
		FocusCommits:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commits")),
		FocusDetails:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		FocusStashes:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stashes")),
		OpenPopup:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "commit popup")),

		NewBranch:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new branch")),
		DeleteBranch: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Update:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
		Push:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),

		SubChanges: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "changes")),
		SubViewer:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "diff")),
		SubMessage: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "message")),
		Discard:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
	}
}
