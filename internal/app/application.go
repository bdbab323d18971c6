package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/parafold/internal/document"
	"github.com/kk-code-lab/parafold/internal/logging"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
	inputui "github.com/kk-code-lab/parafold/internal/ui/input"
	renderui "github.com/kk-code-lab/parafold/internal/ui/render"
	"go.uber.org/zap"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	guard      *terminalGuard
	config     Config
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	shouldQuit bool
}

// NewApplication takes over the terminal to navigate doc. The caller must
// Run or Close the result to give the terminal back.
func NewApplication(doc *document.Document, cfg Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return newApplication(screen, doc, cfg)
}

func newApplication(screen tcell.Screen, doc *document.Document, cfg Config) (*Application, error) {
	cfg = cfg.normalized()
	guard, err := acquireTerminal(screen, cfg.Mouse)
	if err != nil {
		return nil, err
	}

	var (
		path       string
		paragraphs []document.Paragraph
	)
	if doc != nil {
		path = doc.Path
		paragraphs = doc.Paragraphs
	}

	outline := statepkg.NewOutline(paragraphs, cfg.Collapsed)
	state := statepkg.NewAppState(path, outline, cfg.DualPane)
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	renderer := renderui.NewRenderer(screen)
	renderer.SetNavWidth(cfg.NavWidth)
	input := inputui.NewInputHandler(renderer)
	input.SetState(state)

	logging.Info("navigator started",
		zap.String("path", path),
		zap.Int("paragraphs", outline.Len()),
		zap.Bool("collapsed", cfg.Collapsed),
		zap.Bool("dual_pane", cfg.DualPane),
		zap.Int("width", state.ScreenWidth),
		zap.Int("height", state.ScreenHeight),
	)

	return &Application{
		screen:   screen,
		guard:    guard,
		config:   cfg,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderer,
		input:    input,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.guard.Release()
	return nil
}
