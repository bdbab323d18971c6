package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/parafold/internal/document"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
)

func contentTitle(state *statepkg.AppState) string {
	return documentName(state.DocumentPath)
}

func documentName(path string) string {
	switch path {
	case "":
		return "Content"
	case document.StdinPath:
		return "stdin"
	default:
		return filepath.Base(path)
	}
}

// formatStatusText describes the paragraph the active pane points at.
func formatStatusText(state *statepkg.AppState) string {
	if state.Empty() {
		return " " + documentName(state.DocumentPath) + " · empty "
	}

	target := state.Focus.Target()
	parts := []string{
		documentName(state.DocumentPath),
		fmt.Sprintf("¶ %d/%d", target+1, state.Count()),
	}
	if p, ok := state.Outline.Paragraph(target); ok {
		parts = append(parts, formatLineSpan(p))
	}
	if state.Outline.Collapsed(target) {
		parts = append(parts, "collapsed")
	} else {
		parts = append(parts, "expanded")
	}
	if state.Focus.DualPane {
		parts = append(parts, state.Focus.Pane.String())
	}
	return " " + strings.Join(parts, " · ") + " "
}

func formatLineSpan(p statepkg.Paragraph) string {
	if len(p.Lines) <= 1 {
		return fmt.Sprintf("L%d", p.StartLine)
	}
	return fmt.Sprintf("L%d-%d", p.StartLine, p.StartLine+len(p.Lines)-1)
}
