package state

// chromeRows are the screen rows not available to pane content: the top and
// bottom pane borders and the status line.
const chromeRows = 3

// LineRecord is one drawable row of a pane.
type LineRecord struct {
	Text        string
	Paragraph   int
	Highlighted bool
	Collapsed   bool
	First       bool // first line of its paragraph
}

// PaneView is the window of a pane that fits on screen. Lines holds at most
// Rows records starting at Offset out of Total.
type PaneView struct {
	Pane   Pane
	Active bool
	Lines  []LineRecord
	Offset int
	Rows   int
	Total  int
}

// Frame is everything the renderer needs for one draw.
type Frame struct {
	DualPane bool
	Nav      PaneView
	Content  PaneView
}

// PaneRows returns how many content rows each pane has at the current screen
// height.
func (s *AppState) PaneRows() int {
	if rows := s.ScreenHeight - chromeRows; rows > 0 {
		return rows
	}
	return 0
}

// Project derives the visible pane windows from the outline and focus. The
// only thing carried over from the previous frame is the scroll offset of
// each pane, which is updated in place.
func (s *AppState) Project() Frame {
	rows := s.PaneRows()
	frame := Frame{DualPane: s.Focus.DualPane}

	if frame.DualPane {
		s.NavScroll = ScrollOffset(s.NavScroll, s.Focus.NavIndex, rows, s.Count())
		frame.Nav = s.navView(rows)
	}

	total := s.Outline.VisibleLineCount()
	selection := s.Outline.FirstVisibleLine(s.Focus.ContentIndex)
	s.ContentScroll = ScrollOffset(s.ContentScroll, selection, rows, total)
	frame.Content = s.contentView(rows, total)

	return frame
}

func (s *AppState) navView(rows int) PaneView {
	view := PaneView{
		Pane:   PaneNavigation,
		Active: s.Focus.Pane == PaneNavigation,
		Offset: s.NavScroll,
		Rows:   rows,
		Total:  s.Count(),
	}
	for i := s.NavScroll; i < s.Count() && len(view.Lines) < rows; i++ {
		p, _ := s.Outline.Paragraph(i)
		view.Lines = append(view.Lines, LineRecord{
			Text:        p.Title(),
			Paragraph:   i,
			Highlighted: i == s.Focus.NavIndex,
			Collapsed:   s.Outline.Collapsed(i),
			First:       true,
		})
	}
	return view
}

func (s *AppState) contentView(rows, total int) PaneView {
	view := PaneView{
		Pane:   PaneContent,
		Active: s.Focus.Pane == PaneContent,
		Offset: s.ContentScroll,
		Rows:   rows,
		Total:  total,
	}
	if rows == 0 {
		return view
	}
	n := 0
	for line := range s.Outline.VisibleLines() {
		if n >= s.ContentScroll {
			view.Lines = append(view.Lines, LineRecord{
				Text:        line.Text,
				Paragraph:   line.Paragraph,
				Highlighted: !s.Empty() && line.Paragraph == s.Focus.ContentIndex,
				Collapsed:   s.Outline.Collapsed(line.Paragraph),
				First:       line.First,
			})
			if len(view.Lines) >= rows {
				break
			}
		}
		n++
	}
	return view
}
