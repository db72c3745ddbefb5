package dispatcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/motion"
	"github.com/dshills/caret/internal/logging"
)

// Context is what a handler sees while it runs. Handlers execute under
// the editor's exclusive lock and must not call back into the editor.
type Context struct {
	Mover      *motion.Mover
	Registry   *cursor.Registry
	MaxCursors int
}

// HandlerFunc handles a single action.
type HandlerFunc func(ctx *Context, action Action) Result

// Dispatcher routes actions to handlers and commits their results to
// an editor.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc

	editor  *engine.Editor
	config  Config
	metrics *Metrics
	logger  *logging.Logger
}

// New creates a dispatcher bound to editor with the built-in cursor
// handlers registered.
func New(editor *engine.Editor, config Config) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		editor:   editor,
		config:   config,
		logger:   editor.Logger().WithComponent("dispatcher"),
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	registerCursorHandlers(d)
	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults(editor *engine.Editor) *Dispatcher {
	return New(editor, DefaultConfig())
}

// RegisterHandlerFunc registers fn for the named action, replacing any
// existing handler.
func (d *Dispatcher) RegisterHandlerFunc(name string, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = fn
}

// Unregister removes the handler for the named action.
func (d *Dispatcher) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, name)
}

// CanHandle reports whether a handler exists for the named action.
func (d *Dispatcher) CanHandle(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[name]
	return ok
}

// Actions returns the registered action names in no particular order.
func (d *Dispatcher) Actions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}

// Editor returns the editor this dispatcher commits to.
func (d *Dispatcher) Editor() *engine.Editor {
	return d.editor
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch runs the handler for action and returns its result.
func (d *Dispatcher) Dispatch(action Action) Result {
	start := time.Now()

	d.mu.RLock()
	handler, ok := d.handlers[action.Name]
	d.mu.RUnlock()

	var result Result
	switch {
	case !ok:
		result = Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	case action.AllCursors && !IsMotion(action.Name):
		result = Error(fmt.Errorf("%w: %s", ErrNotMotion, action.Name))
	default:
		result = d.run(handler, action)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), result.Status)
	}
	if result.IsError() {
		d.logger.Warn("action %s failed: %v", action.Name, result.Error)
	} else {
		d.logger.Debug("action %s: %s at %v", action.Name, result.Status, result.Cursor)
	}
	return result
}

func (d *Dispatcher) run(handler HandlerFunc, action Action) (result Result) {
	_ = d.editor.Update(func(m *motion.Mover, reg *cursor.Registry) error {
		ctx := &Context{Mover: m, Registry: reg, MaxCursors: d.editor.MaxCursors()}
		if action.AllCursors {
			result = d.forEachCursor(ctx, handler, action)
		} else {
			result = d.execute(ctx, handler, action)
		}
		result.Cursor = reg.Current().Pos()
		return nil
	})
	return result
}

// forEachCursor applies handler with each cursor selected in turn and
// restores the original selection. The result is OK if any cursor moved.
func (d *Dispatcher) forEachCursor(ctx *Context, handler HandlerFunc, action Action) Result {
	reg := ctx.Registry
	orig := reg.Index()
	defer func() { _ = reg.Select(orig) }()

	combined := NoOp()
	for i := 0; i < reg.Len(); i++ {
		_ = reg.Select(i)
		r := d.execute(ctx, handler, action)
		switch {
		case r.IsError():
			return r
		case r.IsOK():
			combined = Success()
		}
	}
	return combined
}

func (d *Dispatcher) execute(ctx *Context, handler HandlerFunc, action Action) (result Result) {
	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				result = Error(fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()
	}
	return handler(ctx, action)
}
