package state

import (
	"errors"
	"testing"
)

func TestNewFocus(t *testing.T) {
	if f := NewFocus(true); f.Pane != PaneNavigation || f.NavIndex != 0 || f.ContentIndex != 0 {
		t.Fatalf("unexpected dual-pane initial focus %+v", f)
	}
	if f := NewFocus(false); f.Pane != PaneContent {
		t.Fatalf("single-pane focus should start on content, got %s", f.Pane)
	}
}

func TestFocusMovementInNavigationLeavesContentAlone(t *testing.T) {
	f := NewFocus(true)
	f.MoveNext(3)
	f.MoveNext(3)
	if f.NavIndex != 2 || f.ContentIndex != 0 {
		t.Fatalf("expected nav=2 content=0, got %+v", f)
	}
	if f.MoveNext(3) {
		t.Fatalf("MoveNext at last paragraph should report no change")
	}
	if f.NavIndex != 2 || f.ContentIndex != 0 {
		t.Fatalf("MoveNext at end changed indices: %+v", f)
	}
	f.MovePrev(3)
	f.MovePrev(3)
	if f.MovePrev(3) || f.NavIndex != 0 {
		t.Fatalf("MovePrev at start should clamp to 0, got %+v", f)
	}
}

func TestFocusMovementInContent(t *testing.T) {
	f := Focus{Pane: PaneContent, DualPane: true, NavIndex: 1}
	f.MoveNext(2)
	f.MoveNext(2)
	if f.ContentIndex != 1 || f.NavIndex != 1 {
		t.Fatalf("expected content=1 nav=1, got %+v", f)
	}
	f.MovePrev(2)
	if f.ContentIndex != 0 {
		t.Fatalf("expected content=0, got %+v", f)
	}
}

func TestFocusCommitSynchronizes(t *testing.T) {
	f := NewFocus(true)
	f.MoveNext(5)
	f.MoveNext(5)
	if !f.Commit(5) {
		t.Fatalf("Commit should report a change")
	}
	if f.ContentIndex != f.NavIndex || f.ContentIndex != 2 || f.Pane != PaneContent {
		t.Fatalf("after Commit expected content=nav=2 on content pane, got %+v", f)
	}
	if f.Commit(5) {
		t.Fatalf("Commit from content pane should be a no-op")
	}
}

func TestFocusSwitchToNavSyncsNavIndex(t *testing.T) {
	f := NewFocus(true)
	f.MoveNext(4)
	f.SwitchToContent()
	f.MoveNext(4)
	f.MoveNext(4)
	f.MoveNext(4)
	if f.NavIndex != 1 || f.ContentIndex != 3 {
		t.Fatalf("expected nav=1 content=3, got %+v", f)
	}
	if !f.SwitchToNav(4) {
		t.Fatalf("SwitchToNav should change state")
	}
	if f.Pane != PaneNavigation || f.NavIndex != 3 {
		t.Fatalf("expected navigation pane with nav=3, got %+v", f)
	}
	if f.SwitchToNav(4) {
		t.Fatalf("SwitchToNav from navigation should be a no-op")
	}
}

func TestFocusSwitchToContentKeepsIndices(t *testing.T) {
	f := NewFocus(true)
	f.MoveNext(4)
	f.SwitchToContent()
	if f.Pane != PaneContent || f.NavIndex != 1 || f.ContentIndex != 0 {
		t.Fatalf("SwitchToContent must not touch indices, got %+v", f)
	}
}

func TestFocusSinglePaneNeverLeavesContent(t *testing.T) {
	f := NewFocus(false)
	if f.SwitchToNav(3) || f.Pane != PaneContent {
		t.Fatalf("single pane must ignore SwitchToNav")
	}
	if f.SwitchToContent() {
		t.Fatalf("single pane SwitchToContent should be a no-op")
	}
	if f.Select(PaneNavigation, 2, 3) {
		t.Fatalf("single pane must ignore navigation clicks")
	}
	if f.Commit(3) {
		t.Fatalf("single pane must ignore Commit")
	}
}

func TestFocusJumps(t *testing.T) {
	f := Focus{Pane: PaneContent, DualPane: true}
	f.JumpEnd(4)
	if f.ContentIndex != 3 {
		t.Fatalf("JumpEnd: expected content=3, got %d", f.ContentIndex)
	}
	f.JumpStart(4)
	if f.ContentIndex != 0 {
		t.Fatalf("JumpStart: expected content=0, got %d", f.ContentIndex)
	}

	f = NewFocus(true)
	f.JumpEnd(4)
	if f.NavIndex != 3 || f.ContentIndex != 0 {
		t.Fatalf("JumpEnd in navigation should move nav only, got %+v", f)
	}
}

func TestFocusSelect(t *testing.T) {
	f := NewFocus(true)
	if !f.Select(PaneContent, 7, 5) {
		t.Fatalf("Select on content should change state")
	}
	if f.Pane != PaneContent || f.ContentIndex != 4 || f.NavIndex != 0 {
		t.Fatalf("expected clamped content selection, got %+v", f)
	}
	f.Select(PaneNavigation, 2, 5)
	if f.Pane != PaneNavigation || f.NavIndex != 2 || f.ContentIndex != 4 {
		t.Fatalf("expected navigation selection 2, got %+v", f)
	}
}

func TestFocusEmptyDocumentIsNoop(t *testing.T) {
	f := NewFocus(true)
	for name, changed := range map[string]bool{
		"MoveNext":  f.MoveNext(0),
		"MovePrev":  f.MovePrev(0),
		"MoveBy":    f.MoveBy(10, 0),
		"JumpStart": f.JumpStart(0),
		"JumpEnd":   f.JumpEnd(0),
		"Commit":    f.Commit(0),
		"Select":    f.Select(PaneContent, 1, 0),
	} {
		if changed {
			t.Fatalf("%s changed state on an empty document", name)
		}
	}
	if err := f.Validate(0); err != nil {
		t.Fatalf("empty focus should validate, got %v", err)
	}
}

func TestFocusValidate(t *testing.T) {
	tests := []struct {
		name  string
		focus Focus
		count int
	}{
		{"nav out of range", Focus{DualPane: true, NavIndex: 3}, 3},
		{"negative content", Focus{DualPane: true, ContentIndex: -1}, 3},
		{"single pane on navigation", Focus{Pane: PaneNavigation}, 3},
		{"selection in empty document", Focus{DualPane: true, NavIndex: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.focus.Validate(tt.count); !errors.Is(err, ErrInvariantViolation) {
				t.Fatalf("expected ErrInvariantViolation, got %v", err)
			}
		})
	}
}

// Every reachable state keeps both indices in range.
func TestFocusReachableStatesStayInRange(t *testing.T) {
	const count = 4
	ops := []func(*Focus){
		func(f *Focus) { f.MoveNext(count) },
		func(f *Focus) { f.MovePrev(count) },
		func(f *Focus) { f.MoveBy(3, count) },
		func(f *Focus) { f.MoveBy(-3, count) },
		func(f *Focus) { f.SwitchToNav(count) },
		func(f *Focus) { f.SwitchToContent() },
		func(f *Focus) { f.Commit(count) },
		func(f *Focus) { f.JumpStart(count) },
		func(f *Focus) { f.JumpEnd(count) },
		func(f *Focus) { f.Select(PaneContent, 9, count) },
		func(f *Focus) { f.Select(PaneNavigation, -2, count) },
	}

	seen := map[Focus]bool{}
	frontier := []Focus{NewFocus(true), NewFocus(false)}
	for len(frontier) > 0 {
		f := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if seen[f] {
			continue
		}
		seen[f] = true
		if err := f.Validate(count); err != nil {
			t.Fatalf("reached invalid state %+v: %v", f, err)
		}
		for _, op := range ops {
			next := f
			op(&next)
			frontier = append(frontier, next)
		}
	}
	if len(seen) < 10 {
		t.Fatalf("expected to explore several states, got %d", len(seen))
	}
}
