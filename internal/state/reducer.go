package state

// StateReducer applies actions to state
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state in place and re-checks the invariants.
// Quit and Suspend belong to the application loop and leave state untouched.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	count := state.Count()

	switch a := action.(type) {

	// ===== SELECTION =====

	case MoveNextAction:
		state.Focus.MoveNext(count)

	case MovePrevAction:
		state.Focus.MovePrev(count)

	case PageNextAction:
		state.Focus.MoveBy(pageStep(state.PaneRows()), count)

	case PagePrevAction:
		state.Focus.MoveBy(-pageStep(state.PaneRows()), count)

	case JumpStartAction:
		state.Focus.JumpStart(count)

	case JumpEndAction:
		state.Focus.JumpEnd(count)

	case SelectAction:
		state.Focus.Select(a.Pane, a.Index, count)

	// ===== PANES =====

	case SwitchToNavAction:
		state.Focus.SwitchToNav(count)

	case SwitchToContentAction:
		state.Focus.SwitchToContent()

	case CommitAction:
		state.Focus.Commit(count)

	// ===== COLLAPSE =====

	case ToggleCollapseAction:
		state.Outline.Toggle(state.Focus.Target())

	case CollapseAllAction:
		state.Outline.SetAll(true)

	case ExpandAllAction:
		state.Outline.SetAll(false)

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible

	case HelpHideAction:
		state.HelpVisible = false

	case QuitAction, SuspendAction:
		return state, nil

	default:
		return state, nil
	}

	return state, state.Validate()
}
