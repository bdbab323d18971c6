package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
	renderui "github.com/kk-code-lab/parafold/internal/ui/render"
)

// LayoutSource reports where the panes were drawn last, for pointer events.
type LayoutSource interface {
	LastLayout() (renderui.Layout, bool)
}

// Result is what one event asks of the loop: at most one Action, and whether
// the screen needs redrawing even when there is none.
type Result struct {
	Action statepkg.Action
	Redraw bool
}

func act(action statepkg.Action) Result {
	return Result{Action: action, Redraw: true}
}

// InputHandler converts tcell events to Actions. It reads state to pick the
// transition but never changes it.
type InputHandler struct {
	state   *statepkg.AppState // Reference to current state for mode checking
	layouts LayoutSource
}

// NewInputHandler creates a new input handler
func NewInputHandler(layouts LayoutSource) *InputHandler {
	return &InputHandler{layouts: layouts}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// Dispatch maps an event to its transition. Unknown events yield a zero
// Result.
func (ih *InputHandler) Dispatch(ev tcell.Event) Result {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.dispatchKey(ev)
	case *tcell.EventMouse:
		return ih.dispatchMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return act(statepkg.ResizeAction{Width: w, Height: h})
	case *tcell.EventFocus, *tcell.EventInterrupt:
		return Result{Redraw: true}
	default:
		return Result{}
	}
}

func (ih *InputHandler) dualPane() bool {
	return ih.state != nil && ih.state.Focus.DualPane
}

func (ih *InputHandler) inNavigation() bool {
	return ih.dualPane() && ih.state.Focus.Pane == statepkg.PaneNavigation
}

// dispatchKey handles keyboard input
func (ih *InputHandler) dispatchKey(ev *tcell.EventKey) Result {
	if ih.state != nil && ih.state.HelpVisible {
		return ih.dispatchHelpKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return act(statepkg.QuitAction{})
	case tcell.KeyCtrlZ:
		return act(statepkg.SuspendAction{})
	case tcell.KeyDown:
		return act(statepkg.MoveNextAction{})
	case tcell.KeyUp:
		return act(statepkg.MovePrevAction{})
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		return act(statepkg.PageNextAction{})
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		return act(statepkg.PagePrevAction{})
	case tcell.KeyHome:
		return act(statepkg.JumpStartAction{})
	case tcell.KeyEnd:
		return act(statepkg.JumpEndAction{})
	case tcell.KeyLeft:
		return ih.switchToNav()
	case tcell.KeyRight:
		return ih.switchToContent()
	case tcell.KeyEscape:
		if ih.dualPane() && !ih.inNavigation() {
			return act(statepkg.SwitchToNavAction{})
		}
		return Result{}
	case tcell.KeyTab, tcell.KeyBacktab:
		if !ih.dualPane() {
			return Result{}
		}
		if ih.inNavigation() {
			return act(statepkg.SwitchToContentAction{})
		}
		return act(statepkg.SwitchToNavAction{})
	case tcell.KeyEnter:
		if ih.inNavigation() {
			return act(statepkg.CommitAction{})
		}
		return act(statepkg.ToggleCollapseAction{})
	case tcell.KeyRune:
		return ih.dispatchRune(ev)
	default:
		return Result{}
	}
}

func (ih *InputHandler) dispatchRune(ev *tcell.EventKey) Result {
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch unicode.ToLower(r) {
		case 'c':
			return act(statepkg.QuitAction{})
		case 'z':
			return act(statepkg.SuspendAction{})
		case 'd':
			return act(statepkg.PageNextAction{})
		case 'u':
			return act(statepkg.PagePrevAction{})
		}
		return Result{}
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+g => 'G')
		r = unicode.ToUpper(r)
	}

	switch r {
	case 'j':
		return act(statepkg.MoveNextAction{})
	case 'k':
		return act(statepkg.MovePrevAction{})
	case 'h':
		return ih.switchToNav()
	case 'l':
		return ih.switchToContent()
	case 'g':
		return act(statepkg.JumpStartAction{})
	case 'G':
		return act(statepkg.JumpEndAction{})
	case ' ':
		return act(statepkg.ToggleCollapseAction{})
	case 'C':
		return act(statepkg.CollapseAllAction{})
	case 'E':
		return act(statepkg.ExpandAllAction{})
	case '?':
		return act(statepkg.HelpToggleAction{})
	case 'q', 'Q':
		return act(statepkg.QuitAction{})
	default:
		return Result{}
	}
}

// dispatchHelpKey only lets keys through that close help or quit.
func (ih *InputHandler) dispatchHelpKey(ev *tcell.EventKey) Result {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return act(statepkg.QuitAction{})
	case tcell.KeyEscape:
		return act(statepkg.HelpHideAction{})
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c' {
			return act(statepkg.QuitAction{})
		}
		switch ev.Rune() {
		case '?', 'q', 'Q':
			return act(statepkg.HelpHideAction{})
		}
	}
	return Result{}
}

func (ih *InputHandler) switchToNav() Result {
	if !ih.dualPane() || ih.inNavigation() {
		return Result{}
	}
	return act(statepkg.SwitchToNavAction{})
}

func (ih *InputHandler) switchToContent() Result {
	if !ih.inNavigation() {
		return Result{}
	}
	return act(statepkg.SwitchToContentAction{})
}

// dispatchMouse maps the wheel to movement and primary clicks to selection of
// the paragraph under the pointer.
func (ih *InputHandler) dispatchMouse(ev *tcell.EventMouse) Result {
	if ih.state == nil || ih.state.HelpVisible {
		return Result{}
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return act(statepkg.MovePrevAction{})
	case buttons&tcell.WheelDown != 0:
		return act(statepkg.MoveNextAction{})
	case buttons&tcell.Button1 == 0:
		return Result{}
	}

	if ih.layouts == nil {
		return Result{}
	}
	layout, ok := ih.layouts.LastLayout()
	if !ok {
		return Result{}
	}
	x, y := ev.Position()
	pane, row, ok := layout.PaneAt(x, y)
	if !ok {
		return Result{}
	}

	index := -1
	switch pane {
	case statepkg.PaneNavigation:
		if i := ih.state.NavScroll + row; i < ih.state.Count() {
			index = i
		}
	case statepkg.PaneContent:
		index = ih.state.Outline.ParagraphAtLine(ih.state.ContentScroll + row)
	}
	if index < 0 {
		return Result{}
	}
	return act(statepkg.SelectAction{Pane: pane, Index: index})
}
