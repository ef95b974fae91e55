package components

// ToastExpiredMsg is sent when a toast's display time is up. Stale ids are
// ignored so a newer toast is not hidden early.
type ToastExpiredMsg struct {
	ID int
}

// CloseShortcutsMsg is emitted when the shortcuts panel asks to be closed.
type CloseShortcutsMsg struct{}
