package textutil

import "strings"

// bidi and zero-width runes are rendered as visible markers so a document
// cannot reorder or hide text on screen.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeLine makes a single document line safe to draw: tabs are expanded,
// control characters become '?', and invisible formatting runes are labeled.
func SanitizeLine(line string) string {
	line = ExpandTabs(line, DefaultTabWidth)
	if !needsSanitizing(line) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if label, ok := invisibleRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		if isControl(r) {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsSanitizing(line string) bool {
	for _, r := range line {
		if isControl(r) {
			return true
		}
		if _, ok := invisibleRuneLabels[r]; ok {
			return true
		}
	}
	return false
}

func isControl(r rune) bool {
	return (r >= 0 && r < 0x20) || r == 0x7f || (r >= 0x80 && r < 0xa0)
}
