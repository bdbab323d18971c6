package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/parafold/internal/document"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
)

const sampleText = `
This is the first paragraph.
It has two lines.

Second paragraph here, also with
two lines.

A final short paragraph.
`

func newSampleState(dualPane bool) *statepkg.AppState {
	outline := statepkg.NewOutline(document.SegmentText(sampleText), true)
	return statepkg.NewAppState("/tmp/notes.txt", outline, dualPane)
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	cells, w, h := screen.GetContents()
	if y < 0 || y >= h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = screenRow(screen, y)
	}
	return strings.Join(rows, "\n")
}

func cellBackground(screen tcell.SimulationScreen, x, y int) tcell.Color {
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}
