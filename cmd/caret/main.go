// Package main is the entry point for the caret editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/caret/internal/app"
	"github.com/dshills/caret/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.Headless() {
		err = application.RunScript(ctx)
	} else {
		err = application.Run(ctx)
	}

	switch {
	case err == nil, errors.Is(err, app.ErrQuit), errors.Is(err, context.Canceled):
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	flag.StringVar(&opts.ScriptPath, "script", "", "Run a Lua script without the terminal UI")
	flag.StringVar(&opts.ScriptPath, "s", "", "Run a Lua script (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "caret - cursor motion for a modal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: caret [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  caret                         Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  caret file.txt                Open a file\n")
		fmt.Fprintf(os.Stderr, "  caret -s moves.lua file.txt   Run a script and print the cursors\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("caret %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.File = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", flag.NArg())
		os.Exit(1)
	}

	return opts
}
