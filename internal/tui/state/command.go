package state

import "github.com/charmbracelet/bubbles/textinput"

// CommandLine holds the editable input line under the scrollback.
// History and completion live in the console; this is only the widget.
type CommandLine struct {
	Input textinput.Model
}

// NewCommandLine initializes a new CommandLine state.
func NewCommandLine() *CommandLine {
	input := textinput.New()
	input.Prompt = "" // Prompt is rendered externally
	input.Placeholder = "type help"
	input.CharLimit = 256
	input.Width = 50
	input.Focus()

	return &CommandLine{
		Input: input,
	}
}

// Value returns the current input text.
func (c *CommandLine) Value() string {
	return c.Input.Value()
}

// Load replaces the input text and moves the cursor to the end.
func (c *CommandLine) Load(s string) {
	c.Input.SetValue(s)
	c.Input.CursorEnd()
}

// Reset clears the input.
func (c *CommandLine) Reset() {
	c.Input.Reset()
}
