package logic

import (
	"strings"

	"github.com/hy4ri/retrodaily/internal/tui/styles"
	"github.com/hy4ri/retrodaily/internal/tui/utils"
)

// refreshViewport re-renders the scrollback into the viewport and keeps it
// pinned to the bottom when new lines arrive.
func (h *Handler) refreshViewport() {
	if !h.ViewportReady {
		return
	}

	lines := h.Console.Lines()
	follow := h.Viewport.AtBottom() || len(lines) != h.Viewport.TotalLineCount()

	h.Viewport.SetContent(RenderScrollback(h, styles.ForName(h.Theme.Name()), h.Viewport.Width))
	if follow {
		h.Viewport.GotoBottom()
	}
}

// RenderScrollback renders every console line, cut to width. With CRT on,
// odd rows are drawn faint.
func RenderScrollback(h *Handler, theme *styles.Theme, width int) string {
	lines := h.Console.Lines()
	rows := make([]string, len(lines))
	for i, l := range lines {
		st := theme.Line(l.Style)
		if h.CRT.On() && i%2 == 1 {
			st = st.Faint(true)
		}
		rows[i] = st.Render(utils.TruncateString(l.Text, width))
	}
	return strings.Join(rows, "\n")
}
