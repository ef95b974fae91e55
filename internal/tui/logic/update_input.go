package logic

import (
	"errors"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/browser"
	"github.com/hy4ri/retrodaily/internal/console"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	switch {
	case key.Matches(msg, km.Quit):
		h.Console.Close()
		h.Quitting = true
		return tea.Quit

	case key.Matches(msg, km.Submit):
		line := h.CommandLine.Value()
		h.CommandLine.Reset()
		return h.Console.Submit(line)

	case key.Matches(msg, km.Previous):
		h.Console.SetInput(h.CommandLine.Value())
		h.Console.RecallPrevious()
		h.CommandLine.Load(h.Console.Input())
		return nil

	case key.Matches(msg, km.Next):
		h.Console.SetInput(h.CommandLine.Value())
		h.Console.RecallNext()
		h.CommandLine.Load(h.Console.Input())
		return nil

	case key.Matches(msg, km.Complete):
		if match, ok := h.Console.Autocomplete(h.CommandLine.Value()); ok {
			h.CommandLine.Load(match)
		}
		return nil

	case key.Matches(msg, km.Clear):
		h.Console.Clear()
		return nil

	case key.Matches(msg, km.ScrollUp):
		h.Viewport.ViewUp()
		return nil

	case key.Matches(msg, km.ScrollDown):
		h.Viewport.ViewDown()
		return nil

	case key.Matches(msg, km.Theme):
		h.Theme.Toggle()
		return nil

	case key.Matches(msg, km.CRT):
		h.CRT.Toggle()
		return nil

	case key.Matches(msg, km.Music):
		h.Music.Toggle()
		return nil

	case key.Matches(msg, km.Copy):
		return h.handleCopy()

	case key.Matches(msg, km.Shortcuts):
		h.ShowShortcuts = true
		return nil

	case key.Matches(msg, km.Search) && h.CommandLine.Value() == "":
		h.CommandLine.Load("search ")
		return nil
	}

	if msg.Alt && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return h.handleLinkShortcut(msg.Runes[0])
	}

	var cmd tea.Cmd
	h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
	return cmd
}

// handleLinkShortcut opens the link bound to r, if any.
func (h *Handler) handleLinkShortcut(r rune) tea.Cmd {
	entry, ok := h.Config.Links.ByShortcut(r)
	if !ok {
		return nil
	}
	h.Toast.Notify("→ "+entry.Label, 0)
	// TrackingOpener logs and toasts a failure over the toast above.
	h.Opener.Open(entry.URL)
	return nil
}

// handleCopy copies the last opened url to the clipboard.
func (h *Handler) handleCopy() tea.Cmd {
	url := h.LastURL
	if url == "" {
		h.Toast.Notify("Nothing opened yet", 0)
		return nil
	}
	return func() tea.Msg {
		err := clipboard.WriteAll(url)
		if err != nil {
			log.Printf("clipboard: %v", err)
		}
		return clipboardMsg{url: url, err: err}
	}
}

// TrackingOpener remembers the last url it was asked to open and reports
// failures as toasts.
type TrackingOpener struct {
	Next    console.Opener
	Handler *Handler
}

// Open implements console.Opener.
func (o *TrackingOpener) Open(url string) error {
	o.Handler.LastURL = url
	err := o.Next.Open(url)
	switch {
	case err == nil:
		o.Handler.StatusMsg = "↗ " + url + "  ·  ctrl+y copies"
	case errors.Is(err, browser.ErrPlaceholder):
		o.Handler.Toast.Notify("⚠ No destination set for this link", 0)
	default:
		log.Printf("open %s: %v", url, err)
		o.Handler.Toast.Notify("⚠ Could not open browser", 0)
	}
	return err
}
