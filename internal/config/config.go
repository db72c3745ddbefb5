package config

import (
	"fmt"
	"time"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/input/mode"
	"github.com/dshills/caret/internal/logging"
)

// Config holds all editor settings.
type Config struct {
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Editor   EditorConfig   `toml:"editor" yaml:"editor"`
	Script   ScriptConfig   `toml:"script" yaml:"script"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty means stderr in headless mode
	// and no logging in interactive mode.
	File string `toml:"file" yaml:"file"`
}

// EditorConfig controls the buffer and cursor registry.
type EditorConfig struct {
	// LineEnding is lf, crlf or cr. Files with a recognizable ending
	// keep their own.
	LineEnding string `toml:"lineEnding" yaml:"lineEnding"`
	// MaxCursors limits the cursor registry, 1..256.
	MaxCursors int `toml:"maxCursors" yaml:"maxCursors"`
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tabWidth" yaml:"tabWidth"`
}

// ScriptConfig controls Lua motion scripts.
type ScriptConfig struct {
	// Timeout bounds a single script run. Zero disables the limit.
	Timeout Duration `toml:"timeout" yaml:"timeout"`
	// Paths are extra directories searched by require.
	Paths []string `toml:"paths" yaml:"paths"`
}

// TerminalConfig controls the interactive view.
type TerminalConfig struct {
	// CommandCursor is the cursor style for command-family modes.
	CommandCursor string `toml:"commandCursor" yaml:"commandCursor"`
	// PrimitiveCursor is the cursor style for primitive-family modes.
	PrimitiveCursor string `toml:"primitiveCursor" yaml:"primitiveCursor"`
	// ShowLineNumbers enables the line number gutter.
	ShowLineNumbers bool `toml:"showLineNumbers" yaml:"showLineNumbers"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			LineEnding: "lf",
			MaxCursors: cursor.MaxCursors,
			TabWidth:   4,
		},
		Script: ScriptConfig{
			Timeout: Duration(5 * time.Second),
		},
		Terminal: TerminalConfig{
			CommandCursor:   mode.CursorBlock.String(),
			PrimitiveCursor: mode.CursorBar.String(),
		},
	}
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if _, err := buffer.ParseLineEnding(c.Editor.LineEnding); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLineEnding, c.Editor.LineEnding)
	}
	if c.Editor.MaxCursors < 1 || c.Editor.MaxCursors > cursor.MaxCursors {
		return fmt.Errorf("%w: %d", ErrInvalidMaxCursors, c.Editor.MaxCursors)
	}
	for _, s := range []string{c.Terminal.CommandCursor, c.Terminal.PrimitiveCursor} {
		if _, err := mode.ParseCursorStyle(s); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidCursorStyle, s)
		}
	}
	if c.Script.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Script.Timeout.Std())
	}
	return nil
}

// LogLevel returns the parsed logging level. Call Validate first.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// LineEnding returns the parsed line ending. Call Validate first.
func (c *Config) LineEnding() buffer.LineEnding {
	le, _ := buffer.ParseLineEnding(c.Editor.LineEnding)
	return le
}

// CursorStyle returns the configured cursor style for a mode family.
func (c *Config) CursorStyle(f mode.Family) mode.CursorStyle {
	s := c.Terminal.CommandCursor
	if f == mode.Primitive {
		s = c.Terminal.PrimitiveCursor
	}
	style, err := mode.ParseCursorStyle(s)
	if err != nil {
		return mode.DefaultCursorStyle(f)
	}
	return style
}

// Load builds a configuration from defaults, the file at path (if path
// is non-empty) and CARET_ environment variables, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := NewFileLoader(path).LoadInto(cfg); err != nil {
			return nil, err
		}
	}
	if err := NewEnvLoader(EnvPrefix).LoadInto(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
