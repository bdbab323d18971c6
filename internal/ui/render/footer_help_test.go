package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/parafold/internal/state"
)

func TestFooterHelpFollowsActivePane(t *testing.T) {
	state := newSampleState(true)

	nav := buildFooterHelpText(state)
	if !strings.Contains(nav, "↵: show") || !strings.Contains(nav, "→: content") {
		t.Fatalf("navigation hints missing: %q", nav)
	}

	state.Focus.SwitchToContent()
	content := buildFooterHelpText(state)
	if !strings.Contains(content, "←: list") || strings.Contains(content, "→: content") {
		t.Fatalf("content hints wrong: %q", content)
	}
	if !strings.HasPrefix(content, " ") || !strings.HasSuffix(content, " ") {
		t.Fatalf("expected padded hint text, got %q", content)
	}
}

func TestFooterHelpSinglePaneAndEmpty(t *testing.T) {
	single := buildFooterHelpSegments(newSampleState(false))
	for _, seg := range single {
		if strings.Contains(seg, "list") || strings.Contains(seg, "content") {
			t.Fatalf("single pane should not mention panes: %v", single)
		}
	}

	empty := statepkg.NewAppState("e.txt", statepkg.NewOutline(nil, true), true)
	segments := buildFooterHelpSegments(empty)
	if len(segments) != 2 || segments[0] != "?: help" || segments[1] != "q: quit" {
		t.Fatalf("empty document should only offer help and quit, got %v", segments)
	}

	if buildFooterHelpText(nil) != "" {
		t.Fatalf("nil state should produce no hints")
	}
}

func TestFormatStatusText(t *testing.T) {
	state := newSampleState(true)

	got := formatStatusText(state)
	want := " notes.txt · ¶ 1/3 · L2-3 · collapsed · navigation "
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}

	state.Focus.JumpEnd(state.Count())
	state.Outline.Toggle(2)
	got = formatStatusText(state)
	want = " notes.txt · ¶ 3/3 · L8 · expanded · navigation "
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}

	single := newSampleState(false)
	if got := formatStatusText(single); strings.Contains(got, "content") {
		t.Fatalf("single pane status should omit the pane name: %q", got)
	}
}

func TestDocumentName(t *testing.T) {
	tests := map[string]string{
		"":                "Content",
		"-":               "stdin",
		"/tmp/notes.txt":  "notes.txt",
		"relative/doc.md": "doc.md",
	}
	for path, want := range tests {
		if got := documentName(path); got != want {
			t.Fatalf("documentName(%q) = %q, want %q", path, got, want)
		}
	}
}
