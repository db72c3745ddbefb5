package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader(EnvPrefix)
	tests := []struct {
		env  string
		want string
	}{
		{"CARET_EDITOR_TAB_WIDTH", "editor.tabWidth"},
		{"CARET_EDITOR_MAX_CURSORS", "editor.maxCursors"},
		{"CARET_TERMINAL_SHOW_LINE_NUMBERS", "terminal.showLineNumbers"},
		{"CARET_LOGGING_LEVEL", "logging.level"},
		{"CARET_SCRIPT", "script"},
		{"CARET_", ""},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"debug", "debug"},
		{"5s", "5s"},
		{`"quoted"`, "quoted"},
		{`["a", "b"]`, []any{"a", "b"}},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, parseValue(tt.in), "parseValue(%q)", tt.in)
	}
}

func TestEnvLoaderLoadInto(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{
		"HOME=/root",
		"CARET_LOG_LEVEL=error",
		"CARET_EDITOR_MAX_CURSORS=16",
		"CARET_EDITOR_LINE_ENDING=cr",
		"CARET_SCRIPT_TIMEOUT=1m",
		`CARET_SCRIPT_PATHS=["/a", "/b"]`,
		"CARET_TERMINAL_SHOW_LINE_NUMBERS=true",
		"CARET_UNKNOWN_SETTING=1",
	})

	cfg := Default()
	require.NoError(t, l.LoadInto(cfg))
	require.NoError(t, cfg.Validate())

	require.Equal(t, "error", cfg.Logging.Level)
	require.Equal(t, 16, cfg.Editor.MaxCursors)
	require.Equal(t, "cr", cfg.Editor.LineEnding)
	require.Equal(t, time.Minute, cfg.Script.Timeout.Std())
	require.Equal(t, []string{"/a", "/b"}, cfg.Script.Paths)
	require.True(t, cfg.Terminal.ShowLineNumbers)
}

func TestEnvLoaderEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, NewEnvLoaderFrom(EnvPrefix, []string{"PATH=/bin"}).LoadInto(cfg))
	require.Equal(t, Default(), cfg)
}

func TestEnvLoaderTypeError(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{"CARET_EDITOR_MAX_CURSORS=many"})
	var perr *ParseError
	require.ErrorAs(t, l.LoadInto(Default()), &perr)
	require.Equal(t, "environment", perr.Path)
}

func TestEnvLoaderCustomMapping(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{"CARET_TABS=8"})
	l.AddMapping("CARET_TABS", "editor.tabWidth")

	cfg := Default()
	require.NoError(t, l.LoadInto(cfg))
	require.Equal(t, 8, cfg.Editor.TabWidth)
}
