// Package config provides configuration for the caret editor.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by the app)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CARET_SECTION_SETTING_NAME
//	├─────────────────────────────┤
//	│  2. Config File             │  ← caret.toml or caret.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file format is chosen by extension: ".yaml" and ".yml" are read as
// YAML, anything else as TOML. Environment variables follow the scheme
// CARET_EDITOR_MAX_CURSORS → editor.maxCursors.
//
// # Basic Usage
//
//	cfg, err := config.Load("caret.toml")
//	if err != nil {
//	    return err
//	}
//
// # Live Reload
//
// A Watcher reloads the file whenever it changes on disk and hands each
// valid result to a callback:
//
//	w, err := config.NewWatcher(path, func(cfg *config.Config) {
//	    logger.SetLevel(...)
//	})
//	defer w.Close()
package config
