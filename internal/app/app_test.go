package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/input/mode"
	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/renderer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func TestNewLoadsFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "text.txt", "abc\r\nde\r\n")

	app := newTestApp(t, Options{File: file, Stdout: &bytes.Buffer{}})
	ed := app.Editor()

	if got := ed.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
	if got := ed.Text(); got != "abc\r\nde" {
		t.Errorf("Text() = %q, want %q", got, "abc\r\nde")
	}
}

func TestNewMissingFileIsEmpty(t *testing.T) {
	app := newTestApp(t, Options{File: filepath.Join(t.TempDir(), "new.txt")})
	if got := app.Editor().LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
}

func TestNewConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "caret.toml", "[editor]\nmaxCursors = 1000\n")

	_, err := New(Options{ConfigPath: bad})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "config" {
		t.Fatalf("New() error = %v, want config InitError", err)
	}
	if !errors.Is(err, config.ErrInvalidMaxCursors) {
		t.Errorf("New() error = %v, want ErrInvalidMaxCursors", err)
	}

	_, err = New(Options{LogLevel: "chatty"})
	if !errors.Is(err, config.ErrInvalidLogLevel) {
		t.Errorf("New() with bad log level error = %v, want ErrInvalidLogLevel", err)
	}

	_, err = New(Options{ConfigPath: filepath.Join(dir, "missing.toml")})
	if !errors.Is(err, config.ErrFileNotFound) {
		t.Errorf("New() with missing config error = %v, want ErrFileNotFound", err)
	}
}

func TestConfigLimitsCursors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "caret.yaml", "editor:\n  maxCursors: 1\n")

	app := newTestApp(t, Options{ConfigPath: cfg})
	if got := app.Editor().MaxCursors(); got != 1 {
		t.Errorf("MaxCursors() = %d, want 1", got)
	}
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "text.txt", "abc\nde\n\nfgh\n")
	script := writeFile(t, dir, "motion.lua", `
caret.dispatch("cursor.moveDown")
caret.cursor.add(1, 0, "insert")
print("lines", caret.line_count())
`)

	out := &bytes.Buffer{}
	app := newTestApp(t, Options{File: file, ScriptPath: script, Stdout: out, Stderr: &bytes.Buffer{}})

	if err := app.RunScript(context.Background()); err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}

	want := "lines\t4\n0 0 1 command/normal\n1 1 0 primitive/insert\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestWriteCursorsStopsOnError(t *testing.T) {
	app := newTestApp(t, Options{})
	if err := app.Editor().AddCursor(cursor.New()); err != nil {
		t.Fatal(err)
	}

	w := &failingWriter{}
	if err := app.WriteCursors(w); err == nil {
		t.Fatal("WriteCursors() succeeded, want error")
	}
	if w.writes != 1 {
		t.Errorf("WriteCursors() made %d writes after the first failure, want 1 in total", w.writes)
	}
}

func TestRunScriptError(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "bad.lua", `caret.cursor.move_to(-1, 0)`)
	stderr := &bytes.Buffer{}

	app := newTestApp(t, Options{ScriptPath: script, Stdout: &bytes.Buffer{}, Stderr: stderr})
	if err := app.RunScript(context.Background()); err == nil {
		t.Fatal("RunScript() succeeded, want error")
	}
	if !bytes.Contains(stderr.Bytes(), []byte("[ERROR]")) {
		t.Errorf("stderr = %q, want an error log line", stderr.String())
	}
}

func TestApplyConfig(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, Options{ScriptPath: writeFile(t, dir, "s.lua", ""), Stderr: &bytes.Buffer{}})

	cfg := config.Default()
	cfg.Logging.Level = "debug"
	app.ApplyConfig(cfg)

	if app.Config() != cfg {
		t.Error("Config() not replaced")
	}
	if got := app.Logger().Level(); got != logging.LevelDebug {
		t.Errorf("logger level = %v, want debug", got)
	}
}

func TestRunInteractive(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "text.txt", "abc\nde\n")
	app := newTestApp(t, Options{File: file})

	sim := tcell.NewSimulationScreen("UTF-8")
	term := renderer.NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sim.SetSize(20, 5)
	app.SetTerminal(term)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	for _, r := range "2lj+" {
		postKey(t, sim, tcell.KeyRune, r)
	}
	postKey(t, sim, tcell.KeyTab, 0)
	postKey(t, sim, tcell.KeyRune, 'i')
	postKey(t, sim, tcell.KeyRune, 'q') // ignored in insert mode
	postKey(t, sim, tcell.KeyCtrlC, 0)

	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("Run() error = %v, want ErrQuit", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}

	cursors, idx := app.Editor().Cursors()
	if len(cursors) != 2 || idx != 1 {
		t.Fatalf("Cursors() = %d cursors at %d, want 2 at 1", len(cursors), idx)
	}
	if cursors[0].Pos() != cursor.Pos(2, 1) || cursors[0].Mode != mode.Normal {
		t.Errorf("cursor 0 = %v, want (2, 1) normal", cursors[0])
	}
	if cursors[1].Pos() != cursor.Pos(2, 1) || cursors[1].Mode != mode.Insert {
		t.Errorf("cursor 1 = %v, want (2, 1) insert", cursors[1])
	}
}

// postKey queues a key press, waiting while the event queue is full.
func postKey(t *testing.T, sim tcell.SimulationScreen, k tcell.Key, r rune) {
	t.Helper()
	ev := tcell.NewEventKey(k, r, tcell.ModNone)
	deadline := time.Now().Add(5 * time.Second)
	for sim.PostEvent(ev) != nil {
		if time.Now().After(deadline) {
			t.Fatal("event queue stayed full")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRunCancelled(t *testing.T) {
	app := newTestApp(t, Options{})

	sim := tcell.NewSimulationScreen("UTF-8")
	term := renderer.NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	app.SetTerminal(term)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
