package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caret.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"info\"\n"), 0o644))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0o644))

	select {
	case cfg := <-changes:
		require.Equal(t, "debug", cfg.Logging.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caret.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[editor]\nmaxCursors = 0\n"), 0o644))
	select {
	case cfg := <-changes:
		t.Fatalf("invalid config delivered: %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("[editor]\nmaxCursors = 2\n"), 0o644))
	select {
	case cfg := <-changes:
		require.Equal(t, 2, cfg.Editor.MaxCursors)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after fixing config")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "caret.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))
	select {
	case <-changes:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caret.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.Equal(t, path, w.Path())
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherCloseWaitsForReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caret.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	w, err := NewWatcher(path, func(*Config) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntabWidth = 2\n"), 0o644))
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	closed := make(chan struct{})
	go func() {
		_ = w.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while onChange was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return after onChange finished")
	}
}
