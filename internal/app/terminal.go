package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// terminalGuard owns the raw-mode, alternate-screen terminal for the life of
// the application. Release restores it and is safe to call from any exit
// path, any number of times.
type terminalGuard struct {
	screen tcell.Screen
	once   sync.Once
}

func acquireTerminal(screen tcell.Screen, mouse bool) (*terminalGuard, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}
	screen.HideCursor()
	screen.EnableFocus()
	if mouse {
		// Parse mouse sequences so clicks don't leak as key events.
		screen.EnableMouse()
	}
	screen.Clear()
	discardPendingInput()
	return &terminalGuard{screen: screen}, nil
}

// Release hands the terminal back to the shell.
func (g *terminalGuard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		g.screen.Fini()
	})
}
