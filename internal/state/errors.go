package state

import "errors"

// ErrInvariantViolation marks a state that the transition rules can never
// produce: an index out of range or collapse flags out of step with the
// paragraphs. Seeing it means a programming defect.
var ErrInvariantViolation = errors.New("invariant violation")
