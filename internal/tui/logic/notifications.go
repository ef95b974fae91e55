package logic

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

// notifyFunc sends a desktop notification; swapped out in tests.
var notifyFunc = func(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// DesktopNotifier returns a toast hook that mirrors every toast as a
// desktop notification titled title.
func DesktopNotifier(title string) func(msg string) tea.Cmd {
	return func(msg string) tea.Cmd {
		return func() tea.Msg {
			if err := notifyFunc(title, msg); err != nil {
				log.Printf("notify: failed to send desktop notification: %v", err)
			}
			return nil
		}
	}
}
