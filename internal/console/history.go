package console

// History holds submitted lines, most recent first. The cursor is -1 when
// the user is not browsing and otherwise an index into the entries.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push records a line at the front and stops browsing.
func (h *History) Push(line string) {
	h.entries = append([]string{line}, h.entries...)
	h.cursor = -1
}

// Prev moves toward older entries, stopping at the oldest. It reports false
// when the history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.cursor = min(h.cursor+1, len(h.entries)-1)
	return h.entries[h.cursor], true
}

// Next moves toward newer entries. Past the newest entry it returns "" and
// the cursor goes back to -1.
func (h *History) Next() string {
	h.cursor = max(h.cursor-1, -1)
	if h.cursor == -1 {
		return ""
	}
	return h.entries[h.cursor]
}

// Cursor returns the current browse position.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
