package state

import "testing"

func highlightedParagraphs(view PaneView) map[int]bool {
	out := map[int]bool{}
	for _, line := range view.Lines {
		if line.Highlighted {
			out[line.Paragraph] = true
		}
	}
	return out
}

func TestProjectDualPane(t *testing.T) {
	state := threeParagraphState(true)
	state = reduce(t, state, MoveNextAction{})
	frame := state.Project()

	if !frame.DualPane {
		t.Fatalf("expected dual-pane frame")
	}
	if !frame.Nav.Active || frame.Content.Active {
		t.Fatalf("expected navigation pane active")
	}
	if len(frame.Nav.Lines) != 3 || frame.Nav.Lines[2].Text != "A final short paragraph." {
		t.Fatalf("unexpected navigation lines %#v", frame.Nav.Lines)
	}
	if got := highlightedParagraphs(frame.Nav); len(got) != 1 || !got[1] {
		t.Fatalf("expected paragraph 1 highlighted in navigation, got %v", got)
	}
	if got := highlightedParagraphs(frame.Content); len(got) != 1 || !got[0] {
		t.Fatalf("browsing must not move content highlight, got %v", got)
	}
	if frame.Content.Total != 3 || frame.Content.Rows != 21 {
		t.Fatalf("unexpected content dimensions total=%d rows=%d", frame.Content.Total, frame.Content.Rows)
	}
}

func TestProjectExpandedHighlightsWholeParagraph(t *testing.T) {
	state := threeParagraphState(false)
	state = reduce(t, state, MoveNextAction{}, CommitAction{})
	frame := state.Project()

	var highlighted []string
	for _, line := range frame.Content.Lines {
		if line.Highlighted {
			highlighted = append(highlighted, line.Text)
		}
	}
	if len(highlighted) != 2 || highlighted[1] != "two lines." {
		t.Fatalf("expected both lines of paragraph 1 highlighted, got %q", highlighted)
	}
	if !frame.Content.Lines[0].First || frame.Content.Lines[1].First {
		t.Fatalf("first-line markers wrong: %#v", frame.Content.Lines[:2])
	}
}

func TestProjectScrollsToSelection(t *testing.T) {
	state := NewAppState("doc.txt", NewOutline(paragraphs(
		[]string{"a1", "a2"},
		[]string{"b1", "b2", "b3"},
		[]string{"c1", "c2"},
	), false), true)
	state.ScreenHeight = chromeRows + 2

	state = reduce(t, state, JumpEndAction{}, CommitAction{})
	frame := state.Project()
	if frame.Content.Offset != 4 || state.ContentScroll != 4 {
		t.Fatalf("expected content offset 4, got %d", frame.Content.Offset)
	}
	if len(frame.Content.Lines) != 2 || frame.Content.Lines[0].Text != "b3" || frame.Content.Lines[1].Text != "c1" {
		t.Fatalf("unexpected window %#v", frame.Content.Lines)
	}
	if frame.Nav.Offset != 1 || len(frame.Nav.Lines) != 2 {
		t.Fatalf("expected navigation window starting at 1, got offset %d", frame.Nav.Offset)
	}

	again := state.Project()
	if again.Content.Offset != 4 {
		t.Fatalf("second projection moved offset to %d", again.Content.Offset)
	}
}

func TestProjectSinglePane(t *testing.T) {
	outline := NewOutline(paragraphs([]string{"a"}, []string{"b"}), true)
	state := NewAppState("doc.txt", outline, false)
	state.ScreenHeight = 10
	frame := state.Project()

	if frame.DualPane || len(frame.Nav.Lines) != 0 {
		t.Fatalf("single pane frame should have no navigation lines")
	}
	if !frame.Content.Active || len(frame.Content.Lines) != 2 {
		t.Fatalf("unexpected content view %+v", frame.Content)
	}
}

func TestProjectTinyAndEmpty(t *testing.T) {
	state := threeParagraphState(true)
	state.ScreenHeight = 2
	frame := state.Project()
	if frame.Content.Rows != 0 || len(frame.Content.Lines) != 0 || len(frame.Nav.Lines) != 0 {
		t.Fatalf("zero-height panes should have no lines")
	}

	empty := NewAppState("empty.txt", NewOutline(nil, true), true)
	empty.ScreenHeight = 20
	frame = empty.Project()
	if len(frame.Content.Lines) != 0 || len(frame.Nav.Lines) != 0 || frame.Content.Offset != 0 {
		t.Fatalf("empty document should project nothing")
	}
}
