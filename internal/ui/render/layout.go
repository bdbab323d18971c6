package render

import statepkg "github.com/kk-code-lab/parafold/internal/state"

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inner returns r without its one-cell border.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Layout places the bordered panes above a one-row status line.
type Layout struct {
	Nav      Rect
	Content  Rect
	StatusY  int
	DualPane bool
}

const (
	// DefaultNavWidth matches the fixed-width paragraph list of the original
	// navigator.
	DefaultNavWidth = 30
	minNavWidth     = 12
	minContentWidth = 20
	statusRows      = 1
)

// ComputeLayout splits a w×h screen. The navigation pane keeps navWidth
// columns while the content pane can stay at least minContentWidth wide, then
// shrinks to a third of the screen. Panes span every row but the last.
func ComputeLayout(w, h, navWidth int, dualPane bool) Layout {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	paneHeight := h - statusRows
	if paneHeight < 0 {
		paneHeight = 0
	}

	layout := Layout{DualPane: dualPane, StatusY: h - statusRows}
	if !dualPane {
		layout.Content = Rect{Width: w, Height: paneHeight}
		return layout
	}

	if navWidth <= 0 {
		navWidth = DefaultNavWidth
	}
	if navWidth+minContentWidth > w {
		navWidth = w / 3
		if navWidth < minNavWidth {
			navWidth = min(minNavWidth, w/2)
		}
	}

	layout.Nav = Rect{Width: navWidth, Height: paneHeight}
	layout.Content = Rect{X: navWidth, Width: w - navWidth, Height: paneHeight}
	return layout
}

// PaneAt maps a screen cell to a pane and a row inside that pane's border.
func (l Layout) PaneAt(x, y int) (pane statepkg.Pane, row int, ok bool) {
	if l.DualPane {
		if inner := l.Nav.Inner(); inner.Contains(x, y) {
			return statepkg.PaneNavigation, y - inner.Y, true
		}
	}
	if inner := l.Content.Inner(); inner.Contains(x, y) {
		return statepkg.PaneContent, y - inner.Y, true
	}
	return 0, 0, false
}
