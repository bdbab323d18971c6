package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
	textutil "github.com/kk-code-lab/parafold/internal/textutil"
)

const (
	navTitle       = "Paragraphs"
	emptyNotice    = "(empty document)"
	collapsedMark  = '▸'
	expandedMark   = '▾'
	moreAboveMark  = '▲'
	moreBelowMark  = '▼'
	markerColumns  = 2
	titleMinMargin = 4
)

// Renderer handles all UI rendering
type Renderer struct {
	screen   tcell.Screen
	theme    ColorTheme
	navWidth int
	widths   runeWidths

	lastLayout    Layout
	hasLastLayout bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		navWidth: DefaultNavWidth,
	}
}

// SetNavWidth sets the preferred width of the navigation pane.
func (r *Renderer) SetNavWidth(width int) {
	if width <= 0 {
		width = DefaultNavWidth
	}
	r.navWidth = width
}

// LastLayout returns the pane placement of the most recent frame.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.lastLayout, r.hasLastLayout
}

// Render draws the entire UI based on state. The screen size is only known
// here, so it is written back to state before the panes are projected.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil {
		r.screen.Show()
		return
	}

	w, h := r.screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if state.HelpVisible {
		r.hasLastLayout = false
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	layout := ComputeLayout(w, h, r.navWidth, state.Focus.DualPane)
	r.lastLayout = layout
	r.hasLastLayout = true
	frame := state.Project()

	if frame.DualPane {
		r.drawPane(frame.Nav, layout.Nav, navTitle)
	}
	r.drawPane(frame.Content, layout.Content, contentTitle(state))
	if state.Empty() {
		r.drawEmptyNotice(layout.Content)
	}
	r.drawStatusLine(state, w, layout.StatusY)

	r.screen.Show()
}

func (r *Renderer) borderStyle(active bool) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.BorderFg)
	if active {
		style = style.Foreground(r.theme.ActiveBorderFg).Bold(true)
	}
	return style
}

func (r *Renderer) lineStyle(active, highlighted bool) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	if !highlighted {
		return style
	}
	if active {
		return style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
	}
	return style.Background(r.theme.InactiveSelectionBg).Foreground(r.theme.InactiveSelectionFg)
}

// drawPane renders a bordered pane with its title and visible lines.
func (r *Renderer) drawPane(view statepkg.PaneView, rect Rect, title string) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	r.drawBorder(rect, title, view.Active)

	inner := rect.Inner()
	for i, rec := range view.Lines {
		if i >= inner.Height {
			break
		}
		y := inner.Y + i
		style := r.lineStyle(view.Active, rec.Highlighted)
		r.fillRow(inner.X, inner.X+inner.Width, y, style)

		x := inner.X
		width := inner.Width
		if view.Pane == statepkg.PaneNavigation && width > markerColumns {
			markStyle := style
			if !rec.Highlighted {
				markStyle = style.Foreground(r.theme.MarkerFg)
			}
			mark := expandedMark
			if rec.Collapsed {
				mark = collapsedMark
			}
			r.screen.SetContent(x, y, mark, nil, markStyle)
			x += markerColumns
			width -= markerColumns
		}

		text := textutil.FitWidth(textutil.SanitizeLine(rec.Text), width)
		r.drawTextLine(x, y, width, text, style)
	}

	// Scroll hints sit on the right edge of the border.
	hintStyle := r.borderStyle(view.Active)
	if view.Offset > 0 && rect.Width > 2 {
		r.screen.SetContent(rect.X+rect.Width-2, rect.Y, moreAboveMark, nil, hintStyle)
	}
	if view.Offset+len(view.Lines) < view.Total && rect.Width > 2 {
		r.screen.SetContent(rect.X+rect.Width-2, rect.Y+rect.Height-1, moreBelowMark, nil, hintStyle)
	}
}

func (r *Renderer) drawBorder(rect Rect, title string, active bool) {
	style := r.borderStyle(active)
	left, right := rect.X, rect.X+rect.Width-1
	top, bottom := rect.Y, rect.Y+rect.Height-1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	available := rect.Width - titleMinMargin
	if title == "" || available <= 0 {
		return
	}
	label := textutil.FitWidth(" "+textutil.SanitizeLine(title)+" ", available)
	titleStyle := style.Foreground(r.theme.TitleFg)
	if active {
		titleStyle = titleStyle.Foreground(r.theme.ActiveBorderFg)
	}
	r.drawTextLine(left+1, top, available, label, titleStyle)
}

func (r *Renderer) drawEmptyNotice(rect Rect) {
	inner := rect.Inner()
	if inner.Width <= 0 || inner.Height <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.MutedFg)
	text := textutil.FitWidth(emptyNotice, inner.Width)
	x := inner.X + (inner.Width-r.measureTextWidth(text))/2
	r.drawTextLine(x, inner.Y+inner.Height/2, inner.Width, text, style)
}

// drawStatusLine renders document position on the left and key hints on the
// right, dropping hints first when the row is too narrow.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, y int) {
	if y < 0 || w <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(0, w, y, style)

	status := textutil.FitWidth(formatStatusText(state), w)
	x := r.drawTextLine(0, y, w, status, style.Bold(true))

	help := buildFooterHelpText(state)
	helpWidth := r.measureTextWidth(help)
	if help == "" || x+helpWidth > w {
		return
	}
	r.drawTextLine(w-helpWidth, y, helpWidth, help, style.Foreground(r.theme.MutedFg))
}
