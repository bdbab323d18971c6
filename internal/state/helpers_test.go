package state

func paragraphs(blocks ...[]string) []Paragraph {
	out := make([]Paragraph, 0, len(blocks))
	line := 1
	for _, lines := range blocks {
		out = append(out, Paragraph{Lines: lines, StartLine: line})
		line += len(lines) + 1
	}
	return out
}

func collectLines(o *Outline) []VisibleLine {
	var out []VisibleLine
	for line := range o.VisibleLines() {
		out = append(out, line)
	}
	return out
}

// threeParagraphState is the sample document of the original navigator.
func threeParagraphState(collapsed bool) *AppState {
	outline := NewOutline(paragraphs(
		[]string{"This is the first paragraph.", "It has two lines."},
		[]string{"Second paragraph here, also with", "two lines."},
		[]string{"A final short paragraph."},
	), collapsed)
	state := NewAppState("sample.txt", outline, true)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	return state
}
