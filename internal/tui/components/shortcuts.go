package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ShortcutItem is one row of the shortcuts panel.
type ShortcutItem struct {
	Key  string
	Desc string
}

// ShortcutsModel renders the keyboard shortcuts panel: link shortcuts first,
// then system keys.
type ShortcutsModel struct {
	width, height int
	links         []ShortcutItem
	system        []ShortcutItem

	Title  lipgloss.Style
	Frame  lipgloss.Style
	Key    lipgloss.Style
	Desc   lipgloss.Style
	Footer string
}

// NewShortcuts creates a new ShortcutsModel.
func NewShortcuts() *ShortcutsModel {
	return &ShortcutsModel{
		Footer: "Press ESC or F1 to close",
	}
}

// SetItems replaces the panel contents.
func (s *ShortcutsModel) SetItems(links, system []ShortcutItem) {
	s.links = links
	s.system = system
}

// Init implements Component.
func (s *ShortcutsModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (s *ShortcutsModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "f1", "q":
			return s, func() tea.Msg {
				return CloseShortcutsMsg{}
			}
		}
	}
	return s, nil
}

// View implements Component.
func (s *ShortcutsModel) View() string {
	var b strings.Builder
	b.WriteString(s.Title.Render("⌨  Keyboard Shortcuts"))
	b.WriteString("\n")

	keyStyle := s.Key.Width(8).Align(lipgloss.Right).PaddingRight(2)
	section := func(name string, items []ShortcutItem) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n" + s.Desc.Render(name) + "\n")
		for _, it := range items {
			b.WriteString(keyStyle.Render(it.Key) + s.Desc.Render(it.Desc) + "\n")
		}
	}
	section("Links", s.links)
	section("System", s.system)

	b.WriteString("\n" + s.Desc.Render(s.Footer))

	box := s.Frame.Render(b.String())
	if s.width == 0 {
		return box
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize implements Component.
func (s *ShortcutsModel) SetSize(width, height int) {
	s.width = width
	s.height = height
}
