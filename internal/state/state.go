package state

import "fmt"

// AppState is the single source of truth
type AppState struct {
	DocumentPath string
	Outline      *Outline
	Focus        Focus

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Last scroll offsets, kept so an unchanged selection does not make the
	// panes jump between renders.
	NavScroll     int
	ContentScroll int

	HelpVisible bool
}

// NewAppState wraps outline with a fresh selection.
func NewAppState(path string, outline *Outline, dualPane bool) *AppState {
	if outline == nil {
		outline = NewOutline(nil, true)
	}
	return &AppState{
		DocumentPath: path,
		Outline:      outline,
		Focus:        NewFocus(dualPane),
	}
}

// Count returns the number of paragraphs.
func (s *AppState) Count() int {
	return s.Outline.Len()
}

// Empty reports whether the document has no paragraphs.
func (s *AppState) Empty() bool {
	return s.Count() == 0
}

// Validate checks the structural invariants and wraps ErrInvariantViolation
// when one does not hold.
func (s *AppState) Validate() error {
	if s.Outline == nil {
		return fmt.Errorf("%w: no outline", ErrInvariantViolation)
	}
	if flags, paragraphs := s.Outline.flagCount(), s.Outline.Len(); flags != paragraphs {
		return fmt.Errorf("%w: %d collapse flags for %d paragraphs", ErrInvariantViolation, flags, paragraphs)
	}
	if s.NavScroll < 0 || s.ContentScroll < 0 {
		return fmt.Errorf("%w: negative scroll offset", ErrInvariantViolation)
	}
	return s.Focus.Validate(s.Count())
}
