package state

import "github.com/charmbracelet/bubbles/key"

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Input line
	Submit   key.Binding
	Previous key.Binding
	Next     key.Binding
	Complete key.Binding
	Clear    key.Binding

	// Scrollback
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Toggles
	Theme key.Binding
	CRT   key.Binding
	Music key.Binding

	// Other
	Search    key.Binding
	Copy      key.Binding
	Shortcuts key.Binding
	Quit      key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Previous: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
		Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear terminal")),

		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),

		Theme: key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "toggle sepia mode")),
		CRT:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "toggle CRT scanlines")),
		Music: key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "toggle background music")),

		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search the web")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy last opened url")),
		Shortcuts: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "show keyboard shortcuts")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// HelpBindings returns the bindings listed in the shortcuts panel, in order.
func (k KeymapData) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Submit, k.Previous, k.Next, k.Complete, k.Clear,
		k.ScrollUp, k.ScrollDown,
		k.Theme, k.CRT, k.Music,
		k.Search, k.Copy, k.Shortcuts, k.Quit,
	}
}

// LinkShortcutPrefix is held with a link's shortcut letter to open it.
const LinkShortcutPrefix = "alt+"
