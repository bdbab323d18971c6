package state

// ScrollOffset returns the first row to show so that selection stays inside
// a window of capacity rows over lineCount lines. An offset that already shows
// the selection is kept as is; otherwise the window moves just far enough.
func ScrollOffset(current, selection, capacity, lineCount int) int {
	if capacity <= 0 || lineCount <= 0 {
		return 0
	}
	if current < 0 {
		current = 0
	}
	if selection < 0 {
		return current
	}

	offset := current
	switch {
	case selection < current:
		offset = selection
	case selection >= current+capacity:
		offset = selection - capacity + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// pageStep is how far PageNext/PagePrev move: half a pane, at least one.
func pageStep(rows int) int {
	if step := rows / 2; step > 1 {
		return step
	}
	return 1
}
