package logic

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDesktopNotifier(t *testing.T) {
	var gotTitle, gotMsg string
	calls := 0
	orig := notifyFunc
	notifyFunc = func(title, msg string) error {
		calls++
		gotTitle, gotMsg = title, msg
		return nil
	}
	defer func() { notifyFunc = orig }()

	cmd := DesktopNotifier("RETRO://DAILY")("↯ CRT ON")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if calls != 0 {
		t.Fatal("notification sent before the command ran")
	}

	if msg := cmd(); msg != nil {
		t.Errorf("expected nil msg, got %v", msg)
	}
	if calls != 1 || gotTitle != "RETRO://DAILY" || gotMsg != "↯ CRT ON" {
		t.Errorf("got %d call(s) with %q/%q", calls, gotTitle, gotMsg)
	}
}

func TestDesktopNotifierError(t *testing.T) {
	orig := notifyFunc
	notifyFunc = func(string, string) error {
		return errors.New("no dbus")
	}
	defer func() { notifyFunc = orig }()

	// Failures are logged, never surfaced as messages.
	if msg := DesktopNotifier("x")("y")(); msg != nil {
		t.Errorf("expected nil msg, got %v", msg)
	}
}

func TestToastHookQueuesNotification(t *testing.T) {
	sent := make(chan string, 1)
	orig := notifyFunc
	notifyFunc = func(_, msg string) error {
		sent <- msg
		return nil
	}
	defer func() { notifyFunc = orig }()

	h, _, _ := newTestHandler(t)
	h.Toast.OnNotify = DesktopNotifier("RETRO://DAILY")

	cmd := press(h, tea.KeyF3)
	if cmd == nil {
		t.Fatal("expected batched commands")
	}
	runAll(cmd)

	select {
	case msg := <-sent:
		if msg != "↯ CRT ON" {
			t.Errorf("notified %q", msg)
		}
	case <-time.After(time.Second):
		t.Error("desktop notification not sent")
	}
}

// runAll runs cmd and any batched children in the background, the way the
// program loop would.
func runAll(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		if batch, ok := cmd().(tea.BatchMsg); ok {
			for _, c := range batch {
				runAll(c)
			}
		}
	}()
}
