package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file format.
type Format uint8

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML is selected by a .yaml or .yml extension.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FileSystem is the file access a FileLoader needs.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FileLoader decodes a configuration file onto an existing Config.
type FileLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFileLoader creates a loader for path using the OS file system.
func NewFileLoader(path string) *FileLoader {
	return NewFileLoaderWithFS(OSFS{}, path)
}

// NewFileLoaderWithFS creates a loader with a custom file system.
func NewFileLoaderWithFS(fsys FileSystem, path string) *FileLoader {
	return &FileLoader{
		fs:     fsys,
		path:   path,
		format: FormatForPath(path),
	}
}

// Path returns the file path.
func (l *FileLoader) Path() string {
	return l.path
}

// Format returns the detected file format.
func (l *FileLoader) Format() Format {
	return l.format
}

// LoadInto decodes the file onto cfg. Settings absent from the file keep
// their current values.
func (l *FileLoader) LoadInto(cfg *Config) error {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, l.path)
		}
		return fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return decode(l.path, l.format, data, cfg)
}

func decode(source string, format Format, data []byte, cfg *Config) error {
	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	}
	return nil
}
