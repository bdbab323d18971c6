package state

import "fmt"

// Pane identifies one of the two regions of the screen.
type Pane int

const (
	PaneNavigation Pane = iota
	PaneContent
)

func (p Pane) String() string {
	switch p {
	case PaneNavigation:
		return "navigation"
	case PaneContent:
		return "content"
	default:
		return fmt.Sprintf("Pane(%d)", int(p))
	}
}

// Focus is the two-pane selection state machine. NavIndex follows the
// navigation list and only moves while that pane is active; ContentIndex is
// the paragraph highlighted in the content pane and only changes on Commit or
// while the content pane is active. Every method takes the paragraph count,
// clamps its arithmetic to [0, count) and reports whether anything changed.
type Focus struct {
	Pane         Pane
	NavIndex     int
	ContentIndex int
	DualPane     bool
}

// NewFocus returns the initial state. Single-pane focus stays on the content
// pane for good.
func NewFocus(dualPane bool) Focus {
	f := Focus{DualPane: dualPane, Pane: PaneContent}
	if dualPane {
		f.Pane = PaneNavigation
	}
	return f
}

// Target is the paragraph that ToggleCollapse acts on.
func (f Focus) Target() int {
	if f.Pane == PaneNavigation {
		return f.NavIndex
	}
	return f.ContentIndex
}

// index returns a pointer to the index owned by the active pane.
func (f *Focus) index() *int {
	if f.Pane == PaneNavigation {
		return &f.NavIndex
	}
	return &f.ContentIndex
}

func (f *Focus) set(idx *int, value, count int) bool {
	value = clampIndex(value, count)
	if *idx == value {
		return false
	}
	*idx = value
	return true
}

// MoveNext advances the active pane's index by one.
func (f *Focus) MoveNext(count int) bool {
	return f.MoveBy(1, count)
}

// MovePrev moves the active pane's index back by one.
func (f *Focus) MovePrev(count int) bool {
	return f.MoveBy(-1, count)
}

// MoveBy moves the active pane's index by delta, clamped.
func (f *Focus) MoveBy(delta, count int) bool {
	if count <= 0 {
		return false
	}
	idx := f.index()
	return f.set(idx, *idx+delta, count)
}

// JumpStart selects the first paragraph in the active pane.
func (f *Focus) JumpStart(count int) bool {
	if count <= 0 {
		return false
	}
	return f.set(f.index(), 0, count)
}

// JumpEnd selects the last paragraph in the active pane.
func (f *Focus) JumpEnd(count int) bool {
	if count <= 0 {
		return false
	}
	return f.set(f.index(), count-1, count)
}

// SwitchToNav leaves the content pane, bringing the navigation selection to
// the paragraph shown in the content pane.
func (f *Focus) SwitchToNav(count int) bool {
	if !f.DualPane || f.Pane != PaneContent {
		return false
	}
	f.Pane = PaneNavigation
	f.NavIndex = clampIndex(f.ContentIndex, count)
	return true
}

// SwitchToContent moves focus to the content pane without touching either
// index.
func (f *Focus) SwitchToContent() bool {
	if !f.DualPane || f.Pane != PaneNavigation {
		return false
	}
	f.Pane = PaneContent
	return true
}

// Commit copies the navigation selection into the content pane and focuses
// it.
func (f *Focus) Commit(count int) bool {
	if f.Pane != PaneNavigation || count <= 0 {
		return false
	}
	f.ContentIndex = clampIndex(f.NavIndex, count)
	f.Pane = PaneContent
	return true
}

// Select focuses pane and sets its index, as a pointer click does. Clicking
// the navigation pane of a single-pane view does nothing.
func (f *Focus) Select(pane Pane, index, count int) bool {
	if count <= 0 {
		return false
	}
	changed := false
	switch pane {
	case PaneNavigation:
		if !f.DualPane {
			return false
		}
		if f.Pane != PaneNavigation {
			changed = f.SwitchToNav(count)
		}
	case PaneContent:
		if f.Pane != PaneContent {
			changed = f.SwitchToContent()
		}
	default:
		return false
	}
	if f.set(f.index(), index, count) {
		changed = true
	}
	return changed
}

// Validate reports an ErrInvariantViolation when an index is outside
// [0, count) or a single-pane focus left the content pane.
func (f Focus) Validate(count int) error {
	if !f.DualPane && f.Pane != PaneContent {
		return fmt.Errorf("%w: single-pane focus on %s pane", ErrInvariantViolation, f.Pane)
	}
	if f.Pane != PaneNavigation && f.Pane != PaneContent {
		return fmt.Errorf("%w: unknown pane %d", ErrInvariantViolation, int(f.Pane))
	}
	if count == 0 {
		if f.NavIndex != 0 || f.ContentIndex != 0 {
			return fmt.Errorf("%w: non-zero selection in empty document", ErrInvariantViolation)
		}
		return nil
	}
	if f.NavIndex < 0 || f.NavIndex >= count {
		return fmt.Errorf("%w: nav index %d outside [0, %d)", ErrInvariantViolation, f.NavIndex, count)
	}
	if f.ContentIndex < 0 || f.ContentIndex >= count {
		return fmt.Errorf("%w: content index %d outside [0, %d)", ErrInvariantViolation, f.ContentIndex, count)
	}
	return nil
}

func clampIndex(value, count int) int {
	if count <= 0 || value < 0 {
		return 0
	}
	if value >= count {
		return count - 1
	}
	return value
}
