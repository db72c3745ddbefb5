package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine/motion"
	"github.com/dshills/caret/internal/renderer"
)

// SetTerminal sets the terminal Run draws on. When unset Run opens the
// controlling terminal.
func (app *Application) SetTerminal(term *renderer.Terminal) {
	app.term = term
}

// Run runs the interactive event loop until the user quits, ctx is
// cancelled or the terminal is closed. A user quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.term == nil {
		term, err := renderer.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		if err := term.Init(); err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.term = term
	}

	cfg := app.Config()
	app.view = renderer.NewView(app.term, viewOptions(cfg)...)
	app.startWatcher()

	stop := context.AfterFunc(ctx, func() {
		_ = app.term.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
	})
	defer stop()

	app.render()
	for {
		ev := app.term.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.handleEvent(ctx, ev); err != nil {
			return err
		}
		app.render()
	}
}

// handleEvent processes a terminal event. Returns ErrQuit if the
// application should exit.
func (app *Application) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			return ctx.Err()
		}
		app.applyPendingReload()
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	res := app.keys.Handle(ev, app.editor.Current().Mode)
	if res.Quit {
		return ErrQuit
	}
	if !res.Dispatch {
		return nil
	}

	r := app.dispatcher.Dispatch(res.Action)
	app.message = ""
	if !r.IsOK() {
		app.message = r.Message
	}
	return nil
}

func (app *Application) render() {
	status := app.statusLine()
	app.editor.View(func(m *motion.Mover) {
		reg := m.Registry()
		app.view.Render(m.Buffer(), reg.Cursors(), reg.Index(), status)
	})
}

// statusLine formats "mode  cursor i/n  line:col  pending  message".
func (app *Application) statusLine() string {
	cursors, idx := app.editor.Cursors()
	c := cursors[idx]
	s := fmt.Sprintf(" %s  %d/%d  %d:%d", c.Mode.Name, idx+1, len(cursors), c.Y+1, c.X+1)
	if p := app.keys.Pending(); p != "" {
		s += "  " + p
	}
	if app.message != "" {
		s += "  " + app.message
	}
	return s
}

// startWatcher reloads the config file on change. Reloads are handed
// to the event loop through a channel and an interrupt event.
func (app *Application) startWatcher() {
	if app.opts.ConfigPath == "" || app.watcher != nil {
		return
	}
	w, err := config.NewWatcher(app.opts.ConfigPath, func(cfg *config.Config) {
		select {
		case <-app.reloads:
		default:
		}
		app.reloads <- cfg
		_ = app.term.PostEvent(tcell.NewEventInterrupt(nil))
	}, config.WithWatcherLogger(app.logger))
	if err != nil {
		app.logger.Warn("config watcher disabled: %v", err)
		return
	}
	app.watcher = w
}

func (app *Application) applyPendingReload() {
	select {
	case cfg := <-app.reloads:
		app.ApplyConfig(cfg)
	default:
	}
}

// ApplyConfig applies the settings that can change while running: the
// log level and the view options. Cursor limits and line endings only
// take effect on restart.
func (app *Application) ApplyConfig(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}

	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.logger.SetLevel(cfg.LogLevel())
	if app.view != nil {
		app.view.SetOptions(viewOptions(cfg)...)
	}
	app.logger.Info("configuration applied")
}

func viewOptions(cfg *config.Config) []renderer.ViewOption {
	return []renderer.ViewOption{
		renderer.WithLineNumbers(cfg.Terminal.ShowLineNumbers),
		renderer.WithTabWidth(cfg.Editor.TabWidth),
		renderer.WithCursorStyle(cfg.CursorStyle),
	}
}
