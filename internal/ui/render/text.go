package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// runeWidths caches go-runewidth lookups; the same few hundred runes are
// measured on every frame.
type runeWidths struct {
	ascii [128]int // width+1, zero means unset
	mu    sync.RWMutex
	wide  sync.Map
}

func (c *runeWidths) width(ru rune) int {
	if ru >= 0 && ru < 128 {
		c.mu.RLock()
		width := c.ascii[ru]
		c.mu.RUnlock()

		if width == 0 && ru != 0 {
			actual := runewidth.RuneWidth(ru)
			if actual < 0 {
				actual = 0
			}
			c.mu.Lock()
			c.ascii[ru] = actual + 1
			c.mu.Unlock()
			return actual
		}
		return width - 1
	}

	if cached, ok := c.wide.Load(ru); ok {
		return cached.(int)
	}
	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	c.wide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.widths.width(ru)
	}
	return width
}

// drawTextLine draws text from startX, never past maxWidth columns, attaching
// zero-width runes to the preceding cell. It returns the next free column.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.widths.width(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && r.widths.width(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		if w == 0 {
			// a lone zero-width rune still needs a cell to sit in
			if x-startX+1 > maxWidth {
				break
			}
			w = 1
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillRow paints columns [startX, endX) of row y with spaces.
func (r *Renderer) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
