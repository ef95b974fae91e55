package console

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DeferredMsg is delivered when a scheduled line is due. Pass it back to
// the console that scheduled it with Deliver.
type DeferredMsg struct {
	owner *Console
	id    int
}

// Schedule registers line to be appended after d. The line is dropped if
// Clear or Close runs first.
func (c *Console) Schedule(d time.Duration, line Line) tea.Cmd {
	if c.closed {
		return nil
	}
	c.nextID++
	id := c.nextID
	c.pending[id] = line
	return c.opts.After(d, func() tea.Msg {
		return DeferredMsg{owner: c, id: id}
	})
}

// Deliver appends a due line. It reports false for messages from another
// console or for tasks that were cancelled.
func (c *Console) Deliver(msg DeferredMsg) bool {
	if msg.owner != c || c.closed {
		return false
	}
	line, ok := c.pending[msg.id]
	if !ok {
		return false
	}
	delete(c.pending, msg.id)
	c.buf.Append(line.Text, line.Style)
	return true
}

// Pending returns the ids of scheduled lines that have not been delivered.
func (c *Console) Pending() []int {
	ids := make([]int, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (c *Console) cancelPending() {
	for id := range c.pending {
		delete(c.pending, id)
	}
}

func tickAfter(d time.Duration, fn func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fn()
	})
}
