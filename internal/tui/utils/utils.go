// Package utils provides shared utility functions for the TUI.
package utils

import "github.com/mattn/go-runewidth"

// TruncateString truncates s to the given display width, appending "…" if
// truncated. Wide characters count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}
	return s
}
