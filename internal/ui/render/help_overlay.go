package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
	textutil "github.com/kk-code-lab/parafold/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	dualPane := state == nil || state.Focus.DualPane

	movement := []helpOverlayEntry{
		{keys: "↑/↓ or k/j", desc: "Move selection"},
		{keys: "PgUp/PgDn", desc: "Move half a pane (also Ctrl+U/Ctrl+D)"},
		{keys: "Home/End", desc: "First / last paragraph (also g/G)"},
	}
	sections := []helpOverlaySection{{title: "Navigation", entries: movement}}

	if dualPane {
		sections = append(sections, helpOverlaySection{
			title: "Panes",
			entries: []helpOverlayEntry{
				{keys: "↵", desc: "Show paragraph in content (list pane)"},
				{keys: "→ or l", desc: "Focus content pane"},
				{keys: "← or h", desc: "Back to paragraph list"},
				{keys: "Tab", desc: "Switch pane"},
			},
		})
	}

	folding := []helpOverlayEntry{
		{keys: "Space", desc: "Collapse / expand paragraph"},
		{keys: "C", desc: "Collapse all"},
		{keys: "E", desc: "Expand all"},
	}
	if dualPane {
		folding = append(folding, helpOverlayEntry{keys: "↵", desc: "Collapse / expand (content pane)"})
	}
	sections = append(sections,
		helpOverlaySection{title: "Folding", entries: folding},
		helpOverlaySection{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend to shell"},
				{keys: "?", desc: "Close this help"},
			},
		},
	)

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	return fmt.Sprintf("  %s %s", textutil.PadRight(entry.keys, 14), entry.desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = textutil.FitWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		footer := textutil.FitWidth("? toggle · Esc/q close", w)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
