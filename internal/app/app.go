package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/dispatcher"
	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/motion"
	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/plugin/lua"
	"github.com/dshills/caret/internal/renderer"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// File is the file to open. Empty opens an empty buffer.
	File string

	// LogLevel overrides the configured logging level.
	LogLevel string

	// ScriptPath runs a Lua script headless instead of the terminal UI.
	ScriptPath string

	// Stdout receives script output and the final cursor report.
	// Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives log output in headless mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// Headless reports whether the options select script mode.
func (o Options) Headless() bool {
	return o.ScriptPath != ""
}

// Application owns the editor and the components around it.
type Application struct {
	mu sync.Mutex

	opts    Options
	config  *config.Config
	logger  *logging.Logger
	logFile *os.File

	editor     *engine.Editor
	dispatcher *dispatcher.Dispatcher
	scripts    *lua.Runner

	// Interactive components, set up by Run.
	term    *renderer.Terminal
	view    *renderer.View
	watcher *config.Watcher
	keys    *KeyHandler
	reloads chan *config.Config
	message string

	running  atomic.Bool
	shutdown sync.Once
}

// New creates an application: it loads configuration, reads the file
// and sets up the editor, dispatcher and script runner.
func New(opts Options) (*Application, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{
		opts:    opts,
		keys:    NewKeyHandler(),
		reloads: make(chan *config.Config, 1),
	}
	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	app.config = cfg

	// 2. Logging
	if err := app.setupLogging(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}

	// 3. Editor
	content, err := app.readFile()
	if err != nil {
		return &InitError{Component: "editor", Err: err}
	}
	lineEnding := cfg.LineEnding()
	if strings.ContainsAny(content, "\r\n") {
		lineEnding = buffer.DetectLineEnding(content)
	}
	app.editor = engine.New(
		engine.WithContent(trimFinalEOL(content)),
		engine.WithLineEnding(lineEnding),
		engine.WithMaxCursors(cfg.Editor.MaxCursors),
		engine.WithLogger(app.logger),
	)

	// 4. Dispatcher
	app.dispatcher = dispatcher.New(app.editor, dispatcher.DefaultConfig().WithMetrics())

	// 5. Scripts
	app.scripts, err = lua.NewRunner(app.dispatcher, app.logger,
		lua.WithExecutionTimeout(cfg.Script.Timeout.Std()),
		lua.WithSearchPaths(cfg.Script.Paths...),
		lua.WithOutput(app.opts.Stdout),
	)
	if err != nil {
		return &InitError{Component: "scripts", Err: err}
	}

	app.logger.Debug("opened %q: %d lines, %s line endings", app.opts.File, app.editor.LineCount(), lineEnding)
	return nil
}

// setupLogging sends logs to the configured file, to stderr in headless
// mode, and nowhere otherwise so the terminal UI is not disturbed.
func (app *Application) setupLogging() error {
	var out io.Writer
	switch {
	case app.config.Logging.File != "":
		f, err := os.OpenFile(app.config.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	case app.opts.Headless():
		out = app.opts.Stderr
	}

	if out == nil {
		app.logger = logging.Discard()
		return nil
	}
	app.logger = logging.New(logging.Config{
		Level:  app.config.LogLevel(),
		Output: out,
		Prefix: "caret",
	})
	return nil
}

func (app *Application) readFile() (string, error) {
	if app.opts.File == "" {
		return "", nil
	}
	data, err := os.ReadFile(app.opts.File)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// trimFinalEOL drops one trailing line ending: it terminates the last
// line rather than starting an empty one.
func trimFinalEOL(text string) string {
	for _, eol := range []string{"\r\n", "\n", "\r"} {
		if t, ok := strings.CutSuffix(text, eol); ok {
			return t
		}
	}
	return text
}

// Editor returns the editor.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// RunScript runs the configured script and writes one line per cursor,
// "index x y mode", to Stdout.
func (app *Application) RunScript(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.scripts.RunFile(ctx, app.opts.ScriptPath); err != nil {
		return err
	}
	return app.WriteCursors(app.opts.Stdout)
}

// WriteCursors writes every cursor as "index x y mode".
func (app *Application) WriteCursors(w io.Writer) error {
	var err error
	app.editor.View(func(m *motion.Mover) {
		m.Registry().ForEach(func(i int, c cursor.Cursor) {
			if err == nil {
				_, err = fmt.Fprintf(w, "%d %d %d %s\n", i, c.X, c.Y, c.Mode)
			}
		})
	})
	return err
}

// Shutdown releases all resources. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		if app.scripts != nil {
			_ = app.scripts.Close()
		}
		if app.term != nil {
			app.term.Fini()
		}
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}
