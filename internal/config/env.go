package config

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for caret environment variables.
const EnvPrefix = "CARET_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "CARET_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "CARET_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader that reads from a fixed list of
// KEY=value pairs instead of the process environment.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return environ }
	return l
}

// defaultEnvMapping returns shorthand variables that don't follow the
// section scheme.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"CARET_LOG_LEVEL":   "logging.level",
		"CARET_LOG_FILE":    "logging.file",
		"CARET_MAX_CURSORS": "editor.maxCursors",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() map[string]any {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			// Convert CARET_EDITOR_TAB_WIDTH to editor.tabWidth
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config
}

// LoadInto applies the environment onto cfg.
func (l *EnvLoader) LoadInto(cfg *Config) error {
	values := l.Load()
	if len(values) == 0 {
		return nil
	}
	data, err := toml.Marshal(values)
	if err != nil {
		return &ParseError{Path: "environment", Message: err.Error(), Err: err}
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: "environment", Message: err.Error(), Err: err}
	}
	return nil
}

// envToPath converts CARET_EDITOR_TAB_WIDTH to editor.tabWidth.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	if name == "" {
		return ""
	}

	parts := strings.Split(name, "_")
	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue reads s as a TOML value (bool, integer, array, quoted
// string) and falls back to the raw string.
func parseValue(s string) any {
	var doc map[string]any
	if err := toml.Unmarshal([]byte("v = "+s), &doc); err == nil {
		return doc["v"]
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
