package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultToastDuration is used when a toast is posted with a zero duration.
const DefaultToastDuration = 2 * time.Second

// ToastModel shows one short-lived message at a time. Posting a new toast
// replaces the current one and restarts its timer.
type ToastModel struct {
	msg      string
	id       int
	visible  bool
	width    int
	duration time.Duration
	style    lipgloss.Style

	// OnNotify, when set, is called for every toast and may return a
	// command to run alongside the expiry timer.
	OnNotify func(msg string) tea.Cmd

	queued []tea.Cmd
}

// NewToast creates a toast with the given default duration.
func NewToast(d time.Duration) *ToastModel {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &ToastModel{duration: d}
}

// Notify implements console.Notifier.
func (t *ToastModel) Notify(msg string, d time.Duration) {
	if d <= 0 {
		d = t.duration
	}
	t.id++
	t.msg = msg
	t.visible = true

	id := t.id
	t.queued = append(t.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	}))
	if t.OnNotify != nil {
		if cmd := t.OnNotify(msg); cmd != nil {
			t.queued = append(t.queued, cmd)
		}
	}
}

// Flush returns the commands queued by Notify since the last call.
func (t *ToastModel) Flush() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	return tea.Batch(cmds...)
}

// Message returns the visible message.
func (t *ToastModel) Message() (string, bool) {
	return t.msg, t.visible
}

// SetStyle sets the style used by View.
func (t *ToastModel) SetStyle(s lipgloss.Style) {
	t.style = s
}

// Init implements Component.
func (t *ToastModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (t *ToastModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.ID == t.id {
		t.visible = false
	}
	return t, nil
}

// View implements Component.
func (t *ToastModel) View() string {
	if !t.visible {
		return ""
	}
	return t.style.MaxWidth(t.width).Render(t.msg)
}

// SetSize implements Component.
func (t *ToastModel) SetSize(width, _ int) {
	t.width = width
}
