package app

import (
	"time"

	renderui "github.com/kk-code-lab/parafold/internal/ui/render"
)

// DefaultDebounce coalesces bursts of events into one redraw, about 50 frames
// per second.
const DefaultDebounce = 20 * time.Millisecond

// Config holds the startup options of the navigator.
type Config struct {
	// Collapsed is the state every paragraph starts in.
	Collapsed bool
	// DualPane shows the paragraph list next to the content.
	DualPane bool
	// Mouse enables wheel scrolling and click selection.
	Mouse bool
	// Debounce is how long redraws are deferred; zero draws after every
	// event.
	Debounce time.Duration
	// NavWidth is the preferred paragraph list width in columns.
	NavWidth int
}

// DefaultConfig returns the options used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Collapsed: true,
		DualPane:  true,
		Mouse:     true,
		Debounce:  DefaultDebounce,
		NavWidth:  renderui.DefaultNavWidth,
	}
}

func (c Config) normalized() Config {
	if c.Debounce < 0 {
		c.Debounce = 0
	}
	if c.NavWidth <= 0 {
		c.NavWidth = renderui.DefaultNavWidth
	}
	return c
}
