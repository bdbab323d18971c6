package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SELECTION ACTIONS =====

type MoveNextAction struct{}
type MovePrevAction struct{}
type PageNextAction struct{}
type PagePrevAction struct{}
type JumpStartAction struct{}
type JumpEndAction struct{}

// SelectAction focuses Pane and selects Index there (pointer clicks).
type SelectAction struct {
	Pane  Pane
	Index int
}

// ===== PANE ACTIONS =====

type SwitchToNavAction struct{}
type SwitchToContentAction struct{}
type CommitAction struct{}

// ===== COLLAPSE ACTIONS =====

type ToggleCollapseAction struct{}
type CollapseAllAction struct{}
type ExpandAllAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{} // Ctrl+Z
