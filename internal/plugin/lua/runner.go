package lua

import (
	"context"

	"github.com/dshills/caret/internal/dispatcher"
	"github.com/dshills/caret/internal/logging"
)

// Runner executes motion scripts against a dispatcher's editor.
type Runner struct {
	state  *State
	logger *logging.Logger
}

// NewRunner creates a sandboxed state with the caret API installed.
func NewRunner(d *dispatcher.Dispatcher, logger *logging.Logger, opts ...StateOption) (*Runner, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	state, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	NewAPI(d, logger).Register(state.LuaState())

	return &Runner{
		state:  state,
		logger: logger.WithComponent("lua"),
	}, nil
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	r.logger.Debug("running %s", path)
	if err := r.state.DoFile(ctx, path); err != nil {
		r.logger.Error("script %s: %v", path, err)
		return err
	}
	return nil
}

// RunString executes src.
func (r *Runner) RunString(ctx context.Context, src string) error {
	return r.state.DoString(ctx, src)
}

// State returns the underlying state.
func (r *Runner) State() *State {
	return r.state
}

// Close releases the Lua state.
func (r *Runner) Close() error {
	return r.state.Close()
}
