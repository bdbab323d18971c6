package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/parafold/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	return append(segments, "?: help", "q: quit")
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	switch {
	case state.Empty():
		return nil
	case !state.Focus.DualPane:
		return []string{
			"↑↓: move",
			"Space: fold",
			"C/E: fold all",
		}
	case state.Focus.Pane == statepkg.PaneNavigation:
		return []string{
			"↑↓: browse",
			"↵: show",
			"Space: fold",
			"→: content",
		}
	default:
		return []string{
			"↑↓: move",
			"↵/Space: fold",
			"←: list",
		}
	}
}
