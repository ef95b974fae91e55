// Package ui renders the TUI from the shared state.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/retrodaily/internal/links"
	"github.com/hy4ri/retrodaily/internal/tui/components"
	"github.com/hy4ri/retrodaily/internal/tui/state"
	"github.com/hy4ri/retrodaily/internal/tui/styles"
	"github.com/hy4ri/retrodaily/internal/tui/utils"
)

// Renderer draws the screen. It never mutates state other than
// styling components before they render.
type Renderer struct {
	*state.State

	// Cache
	theme *styles.Theme
}

// NewRenderer creates a Renderer over s.
func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

// View renders the whole screen.
func (r *Renderer) View() string {
	if r.Quitting {
		return ""
	}
	if r.Width == 0 || !r.ViewportReady {
		return "Booting..."
	}

	theme := r.currentTheme()

	if r.ShowShortcuts {
		r.ShortcutsComp.Title = theme.Title
		r.ShortcutsComp.Frame = theme.Dialog
		r.ShortcutsComp.Key = theme.Key
		r.ShortcutsComp.Desc = theme.KeyDesc
		r.ShortcutsComp.SetItems(LinkShortcutItems(r.Config.Links), SystemShortcutItems(r.Keymap))
		return r.ShortcutsComp.View()
	}

	header := r.renderTitleBar(theme)
	body := theme.Frame.
		Width(r.Width - 2).
		Render(r.Viewport.View())
	input := r.renderCommandLine(theme)
	bottom := r.renderBottomRow(theme)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, bottom)
}

func (r *Renderer) currentTheme() *styles.Theme {
	if r.theme == nil || r.theme.Name != r.Theme.Name() {
		r.theme = styles.ForName(r.Theme.Name())
	}
	return r.theme
}

// renderTitleBar renders the site title on the left and toggle states on
// the right.
func (r *Renderer) renderTitleBar(theme *styles.Theme) string {
	left := theme.Title.Render(r.Config.Site.Title)
	if owner := r.Config.Site.Owner; owner != "" {
		left += theme.Subtitle.Render("  ·  " + strings.ToUpper(owner) + "'S PORTAL")
	}

	crt := "OFF"
	if r.CRT.On() {
		crt = "ON"
	}
	status := "◑ " + strings.ToUpper(r.Theme.Name()) + "   ↯ CRT " + crt + "   ♪ " + r.Music.Label()
	right := theme.Subtitle.Render(status)

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return theme.Title.Render(utils.TruncateString(r.Config.Site.Title, r.Width))
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderCommandLine(theme *styles.Theme) string {
	in := &r.CommandLine.Input
	in.TextStyle = theme.CommandInput()
	in.PlaceholderStyle = theme.CommandPlaceholder()
	in.Cursor.Style = theme.CommandPrompt()

	prompt := theme.CommandPrompt().Render("❯ ")
	return styles.CommandLineContainer.
		BorderForeground(theme.Palette.Muted).
		Width(r.Width).
		Render(prompt + in.View())
}

func (r *Renderer) renderBottomRow(theme *styles.Theme) string {
	r.Toast.SetStyle(theme.Toast)
	if msg, ok := r.Toast.Message(); ok && msg != "" {
		return r.Toast.View()
	}
	if r.StatusMsg != "" {
		return theme.Subtitle.Render(utils.TruncateString(r.StatusMsg, r.Width))
	}
	hint := theme.Key.Render("F1") + theme.KeyDesc.Render(" shortcuts  ") +
		theme.Key.Render("tab") + theme.KeyDesc.Render(" complete  ") +
		theme.Key.Render("↑↓") + theme.KeyDesc.Render(" history  ") +
		theme.Key.Render("esc") + theme.KeyDesc.Render(" quit")
	return hint
}

// LinkShortcutItems lists the link shortcuts as panel rows.
func LinkShortcutItems(d links.Directory) []components.ShortcutItem {
	var items []components.ShortcutItem
	for _, s := range d.Shortcuts() {
		items = append(items, components.ShortcutItem{
			Key:  "alt+" + strings.ToUpper(string(s.Key)),
			Desc: s.Entry.Label,
		})
	}
	return items
}

// SystemShortcutItems lists the keymap as panel rows.
func SystemShortcutItems(k state.KeymapData) []components.ShortcutItem {
	var items []components.ShortcutItem
	for _, b := range k.HelpBindings() {
		h := b.Help()
		items = append(items, components.ShortcutItem{Key: h.Key, Desc: h.Desc})
	}
	return items
}
