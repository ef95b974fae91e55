package styles

import "github.com/charmbracelet/lipgloss"

// CommandPrompt is the style for the "❯" prompt.
func (t *Theme) CommandPrompt() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Accent).
		Bold(true)
}

// CommandInput is the style for the input text.
func (t *Theme) CommandInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Foreground)
}

// CommandPlaceholder is the style for the empty-input hint.
func (t *Theme) CommandPlaceholder() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Muted).
		Italic(true)
}

// CommandLineContainer is the container for the command line area.
var CommandLineContainer = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderTop(true).
	Padding(0, 1)
