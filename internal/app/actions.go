package app

import (
	"fmt"

	"github.com/kk-code-lab/parafold/internal/logging"
	statepkg "github.com/kk-code-lab/parafold/internal/state"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// handleAction applies one action and reports whether the screen changed.
func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}
	if logging.Enabled(zapcore.DebugLevel) {
		logging.Debug("action", zap.String("type", actionName(action)))
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		logging.Info("quit requested")
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		logging.Info("suspending")
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ResizeAction:
		logging.Debug("resize", zap.Int("width", a.Width), zap.Int("height", a.Height))
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		// Unreachable while every transition clamps; the deferred guard in
		// Run restores the terminal before the panic surfaces.
		logging.Error("invariant violation",
			zap.Error(err),
			zap.String("action", actionName(action)),
			zap.Int("nav_index", app.state.Focus.NavIndex),
			zap.Int("content_index", app.state.Focus.ContentIndex),
			zap.Int("paragraphs", app.state.Count()),
		)
		panic(err)
	}
	return true
}

func actionName(action statepkg.Action) string {
	return fmt.Sprintf("%T", action)
}
