package app

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/parafold/internal/logging"
	"go.uber.org/zap"
)

// Run drives the event loop until the user quits, ctx is cancelled or a
// termination signal arrives. The terminal is restored on every way out,
// including a panic, which is re-raised once the screen is released.
func (app *Application) Run(ctx context.Context) error {
	defer app.guard.Release()
	defer func() {
		if r := recover(); r != nil {
			app.guard.Release()
			logging.Error("event loop panicked", zap.Any("panic", r))
			logging.Sync()
			panic(r)
		}
	}()

	eventCh := make(chan tcell.Event)
	stopPoll := make(chan struct{})
	defer close(stopPoll)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case eventCh <- ev:
			case <-stopPoll:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}
	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, terminationSignals()...)
	defer signal.Stop(termCh)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	// requestRender draws now when debouncing is off, otherwise arms the
	// timer unless a frame is already pending.
	requestRender := func() {
		if app.config.Debounce <= 0 {
			app.render()
			return
		}
		if debounceCh != nil {
			return
		}
		if debounceTimer == nil {
			debounceTimer = time.NewTimer(app.config.Debounce)
		} else {
			debounceTimer.Reset(app.config.Debounce)
		}
		debounceCh = debounceTimer.C
	}

	app.render()

	for !app.shouldQuit {
		select {
		case ev := <-eventCh:
			if app.handleEvent(ev) {
				requestRender()
			}
		case <-debounceCh:
			debounceCh = nil
			app.render()
		case <-sigContCh:
			logging.Info("resumed")
			if app.resumeAfterStop() {
				requestRender()
			}
		case sig := <-termCh:
			logging.Info("terminating on signal", zap.String("signal", sig.String()))
			return nil
		case <-ctx.Done():
			logging.Info("context cancelled", zap.Error(ctx.Err()))
			return nil
		}
	}

	logging.Info("navigator stopped")
	return nil
}

// handleEvent dispatches one terminal event and reports whether a redraw is
// needed.
func (app *Application) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		app.screen.Sync()
	}

	result := app.input.Dispatch(ev)
	if result.Action == nil {
		return result.Redraw
	}
	changed := app.handleAction(result.Action)
	if app.shouldQuit {
		return false
	}
	return changed || result.Redraw
}

func (app *Application) render() {
	app.renderer.Render(app.state)
}
