// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/retrodaily/internal/config"
	"github.com/hy4ri/retrodaily/internal/console"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color // Prompt, banner
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

// Dark is the default amber-on-black palette.
var Dark = Palette{
	Background: lipgloss.Color("#14110D"),
	Foreground: lipgloss.Color("#E8D9BE"),
	Accent:     lipgloss.Color("#E0A458"),
	Info:       lipgloss.Color("#C9A66B"),
	Muted:      lipgloss.Color("#8A7A63"),
	Error:      lipgloss.Color("#D9695F"),
	Success:    lipgloss.Color("#9BBF85"),
}

// Sepia is the vintage paper palette.
var Sepia = Palette{
	Background: lipgloss.Color("#F1E4C9"),
	Foreground: lipgloss.Color("#3B2A1A"),
	Accent:     lipgloss.Color("#8B4513"),
	Info:       lipgloss.Color("#6B4F2E"),
	Muted:      lipgloss.Color("#9C8466"),
	Error:      lipgloss.Color("#A0392B"),
	Success:    lipgloss.Color("#4F6B3A"),
}

// Theme holds every style the renderer needs for one palette.
type Theme struct {
	Name    string
	Palette Palette

	// Frame is the outer border around the console.
	Frame lipgloss.Style

	// Title is the style for the title bar
	// NOTE: No margins - they break viewport scroll sync line counting
	Title lipgloss.Style

	// Subtitle is for the owner/status text next to the title
	Subtitle lipgloss.Style

	// Toast is the transient notification box
	Toast lipgloss.Style

	// Dialog is the shortcuts panel
	Dialog lipgloss.Style

	// Key and KeyDesc render key hints
	Key     lipgloss.Style
	KeyDesc lipgloss.Style

	lines map[console.Style]lipgloss.Style
}

// NewTheme builds the styles for a palette.
func NewTheme(name string, p Palette) *Theme {
	t := &Theme{
		Name:    name,
		Palette: p,
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Toast: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Bold(true).
			Padding(0, 2),
		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		Key: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		KeyDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
	}

	t.lines = map[console.Style]lipgloss.Style{
		console.StyleOutput:  lipgloss.NewStyle().Foreground(p.Foreground),
		console.StylePrompt:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		console.StyleError:   lipgloss.NewStyle().Foreground(p.Error),
		console.StyleSuccess: lipgloss.NewStyle().Foreground(p.Success),
		console.StyleInfo:    lipgloss.NewStyle().Foreground(p.Info),
		console.StyleMuted:   lipgloss.NewStyle().Foreground(p.Muted),
		console.StyleBanner:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
	}

	return t
}

// Line returns the style for a scrollback line.
func (t *Theme) Line(s console.Style) lipgloss.Style {
	if st, ok := t.lines[s]; ok {
		return st
	}
	return t.lines[console.StyleOutput]
}

// ForName returns the theme for a config theme name, defaulting to dark.
func ForName(name string) *Theme {
	if name == config.ThemeSepia {
		return NewTheme(config.ThemeSepia, Sepia)
	}
	return NewTheme(config.ThemeDark, Dark)
}
