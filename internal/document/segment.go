package document

import "strings"

// Paragraph is a non-empty run of consecutive non-blank lines.
type Paragraph struct {
	Lines     []string
	StartLine int // 1-based line number of Lines[0] in the source
}

// Title returns the paragraph's first line, the text shown when collapsed.
func (p Paragraph) Title() string {
	if len(p.Lines) == 0 {
		return ""
	}
	return p.Lines[0]
}

// SplitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsBlank reports whether line separates paragraphs.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Segment groups lines into paragraphs. Runs of blank lines collapse into a
// single boundary and leading or trailing blank lines yield nothing.
func Segment(lines []string) []Paragraph {
	var (
		paragraphs []Paragraph
		current    []string
		start      int
	)
	for i, line := range lines {
		if IsBlank(line) {
			if len(current) > 0 {
				paragraphs = append(paragraphs, Paragraph{Lines: current, StartLine: start})
				current = nil
			}
			continue
		}
		if len(current) == 0 {
			start = i + 1
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, Paragraph{Lines: current, StartLine: start})
	}
	return paragraphs
}

// SegmentText is Segment over SplitLines(text).
func SegmentText(text string) []Paragraph {
	return Segment(SplitLines(text))
}
