// Package logic implements the update side of the TUI: key handling,
// console dispatch and message routing.
package logic

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/retrodaily/internal/console"
	"github.com/hy4ri/retrodaily/internal/tui/components"
	"github.com/hy4ri/retrodaily/internal/tui/state"
)

// Layout rows outside the scrollback: title bar, frame border top and
// bottom, command line border and input, toast/status row.
const chromeHeight = 6

type bootToastMsg struct{}

type clipboardMsg struct {
	url string
	err error
}

// Handler processes messages against the shared state.
type Handler struct {
	*state.State
}

// NewHandler creates a Handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

// Init returns the startup commands.
func (h *Handler) Init() tea.Cmd {
	return tea.Tick(state.BootToastDelay, func(time.Time) tea.Msg {
		return bootToastMsg{}
	})
}

// Update handles one message and returns follow-up commands.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	cmd := h.route(msg)
	h.refreshViewport()
	return tea.Batch(cmd, h.Toast.Flush())
}

func (h *Handler) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if h.ShowShortcuts {
			_, cmd := h.ShortcutsComp.Update(msg)
			return cmd
		}
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		h.Viewport, cmd = h.Viewport.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case console.DeferredMsg:
		h.Console.Deliver(msg)
		return nil

	case components.ToastExpiredMsg:
		h.Toast.Update(msg)
		return nil

	case components.CloseShortcutsMsg:
		h.ShowShortcuts = false
		return nil

	case bootToastMsg:
		h.Toast.Notify("» SYSTEM ONLINE  |  Press F1 for shortcuts", 3*time.Second)
		return nil

	case clipboardMsg:
		if msg.err != nil {
			h.Toast.Notify("⚠ Copy failed", 0)
			return nil
		}
		h.Toast.Notify("⧉ Copied "+msg.url, 0)
		return nil
	}

	// Forward everything else (cursor blink) to the input
	var cmd tea.Cmd
	h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
	return cmd
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := msg.Width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	if !h.ViewportReady {
		h.Viewport = viewport.New(vpWidth, vpHeight)
		h.Viewport.Style = lipgloss.NewStyle()
		h.Viewport.MouseWheelEnabled = true
		h.ViewportReady = true
	} else {
		h.Viewport.Width = vpWidth
		h.Viewport.Height = vpHeight
	}

	h.CommandLine.Input.Width = vpWidth - 4
	h.ShortcutsComp.SetSize(msg.Width, msg.Height)
	h.Toast.SetSize(msg.Width, 1)

	return nil
}
