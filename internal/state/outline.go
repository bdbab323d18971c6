package state

import (
	"iter"

	"github.com/kk-code-lab/parafold/internal/document"
)

// Paragraph mirrors document.Paragraph so UI code depends on state only.
type Paragraph = document.Paragraph

// VisibleLine is one line of the flattened outline, tagged with the index of
// the paragraph it belongs to.
type VisibleLine struct {
	Paragraph int
	Text      string
	First     bool // first line of its paragraph
}

// Outline holds the paragraphs of a document and one collapse flag per
// paragraph. Paragraph structure never changes after construction; only the
// flags do.
type Outline struct {
	paragraphs []Paragraph
	collapsed  []bool
}

// NewOutline builds an outline with every paragraph collapsed or expanded
// according to collapsed. Empty paragraphs are dropped.
func NewOutline(paragraphs []Paragraph, collapsed bool) *Outline {
	kept := make([]Paragraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		if len(p.Lines) > 0 {
			kept = append(kept, p)
		}
	}
	flags := make([]bool, len(kept))
	for i := range flags {
		flags[i] = collapsed
	}
	return &Outline{paragraphs: kept, collapsed: flags}
}

// Len returns the number of paragraphs.
func (o *Outline) Len() int {
	if o == nil {
		return 0
	}
	return len(o.paragraphs)
}

// Paragraph returns paragraph i.
func (o *Outline) Paragraph(i int) (Paragraph, bool) {
	if i < 0 || i >= o.Len() {
		return Paragraph{}, false
	}
	return o.paragraphs[i], true
}

// Collapsed reports the collapse flag of paragraph i. Out-of-range indices
// report false.
func (o *Outline) Collapsed(i int) bool {
	if i < 0 || i >= o.Len() {
		return false
	}
	return o.collapsed[i]
}

// Toggle flips the collapse flag of paragraph i. Out-of-range indices are
// ignored.
func (o *Outline) Toggle(i int) {
	if i < 0 || i >= o.Len() {
		return
	}
	o.collapsed[i] = !o.collapsed[i]
}

// SetAll sets every collapse flag to collapsed.
func (o *Outline) SetAll(collapsed bool) {
	if o == nil {
		return
	}
	for i := range o.collapsed {
		o.collapsed[i] = collapsed
	}
}

// VisibleLines yields the flattened outline: the first line of each collapsed
// paragraph and every line of each expanded one. The sequence reads the
// current flags each time it is ranged over.
func (o *Outline) VisibleLines() iter.Seq[VisibleLine] {
	return func(yield func(VisibleLine) bool) {
		for i := 0; i < o.Len(); i++ {
			for j, line := range o.paragraphs[i].Lines[:o.span(i)] {
				if !yield(VisibleLine{Paragraph: i, Text: line, First: j == 0}) {
					return
				}
			}
		}
	}
}

// span is the number of visible lines paragraph i contributes.
func (o *Outline) span(i int) int {
	if o.collapsed[i] {
		return 1
	}
	return len(o.paragraphs[i].Lines)
}

// VisibleLineCount returns the length of VisibleLines.
func (o *Outline) VisibleLineCount() int {
	total := 0
	for i := 0; i < o.Len(); i++ {
		total += o.span(i)
	}
	return total
}

// FirstVisibleLine returns the position of paragraph i's first line in
// VisibleLines, or -1 when i is out of range.
func (o *Outline) FirstVisibleLine(i int) int {
	if i < 0 || i >= o.Len() {
		return -1
	}
	line := 0
	for p := 0; p < i; p++ {
		line += o.span(p)
	}
	return line
}

// ParagraphAtLine returns the paragraph owning visible line n, or -1.
func (o *Outline) ParagraphAtLine(n int) int {
	if n < 0 {
		return -1
	}
	for i := 0; i < o.Len(); i++ {
		span := o.span(i)
		if n < span {
			return i
		}
		n -= span
	}
	return -1
}

func (o *Outline) flagCount() int {
	if o == nil {
		return 0
	}
	return len(o.collapsed)
}
