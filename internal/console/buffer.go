package console

// Style tags a scrollback line for presentation. It never changes behaviour.
type Style int

const (
	StyleOutput Style = iota
	StylePrompt
	StyleError
	StyleSuccess
	StyleInfo
	StyleMuted
	StyleBanner
)

var styleNames = [...]string{
	StyleOutput:  "output",
	StylePrompt:  "prompt",
	StyleError:   "error",
	StyleSuccess: "success",
	StyleInfo:    "info",
	StyleMuted:   "muted",
	StyleBanner:  "banner",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "output"
	}
	return styleNames[s]
}

// Line is one rendered row of scrollback.
type Line struct {
	Text  string
	Style Style
}

// Buffer is the append-only scrollback. Clear is the only way to remove lines.
type Buffer struct {
	lines []Line
}

// Append adds a line to the end of the buffer.
func (b *Buffer) Append(text string, style Style) {
	b.lines = append(b.lines, Line{Text: text, Style: style})
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.lines = nil
}
