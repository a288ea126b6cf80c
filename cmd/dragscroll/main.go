// Package main is the entry point for the dragscroll terminal demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/dragscroll/internal/app"
	"github.com/dshills/dragscroll/internal/config"
	"github.com/dshills/dragscroll/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and runs the host. Exit codes: 0 on a normal quit or
// after -help/-version, 1 on runtime errors, 2 on bad arguments.
func run(args []string, stdout, stderr io.Writer) int {
	opts, dump, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}
	if dump != "" {
		return dumpConfig(opts, dump, stdout, stderr)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(stderr, "Error: dragscroll needs an interactive terminal on stdout")
		return 1
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Create terminal backend
	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the application
	if err := application.Run(); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// dumpConfig writes the resolved configuration to stdout.
func dumpConfig(opts app.Options, format config.Format, stdout, stderr io.Writer) int {
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := config.Encode(stdout, format, cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags returns the application options and the -dump-config format.
// exit is true when run should return code without starting the host.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, dump config.Format, exit bool, code int) {
	fs := flag.NewFlagSet("dragscroll", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion bool
	var showHelp bool
	var dumpFormat string

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml, .yml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&opts.Watch, "watch", true, "Reload the configuration file when it changes")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.Layout, "layout", "", "Card layout (horizontal, vertical, grid)")
	fs.StringVar(&dumpFormat, "dump-config", "", "Print the resolved configuration as toml or yaml and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "dragscroll - drag-to-scroll with momentum in the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: dragscroll [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  DRAGSCROLL_DECAY_RATE, DRAGSCROLL_SAFE_DISPLACEMENT, DRAGSCROLL_RUBBER_BAND,\n")
		fmt.Fprintf(stderr, "  DRAGSCROLL_AXIS, DRAGSCROLL_LOG_LEVEL, DRAGSCROLL_LOG_FILE\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dragscroll                        Grid of cards with default settings\n")
		fmt.Fprintf(stderr, "  dragscroll -layout horizontal     Single scrolling row\n")
		fmt.Fprintf(stderr, "  dragscroll -c dragscroll.toml     Load settings, reload on save\n")
		fmt.Fprintf(stderr, "  dragscroll -dump-config toml      Print the defaults as a starting config\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, "", true, 0
		}
		return opts, "", true, 2
	}

	if showHelp {
		fs.Usage()
		return opts, "", true, 0
	}

	if showVersion {
		fmt.Fprintf(stdout, "dragscroll %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, "", true, 0
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, "", true, 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return opts, "", true, 2
	}

	switch f := config.Format(dumpFormat); f {
	case "", config.FormatTOML, config.FormatYAML:
		dump = f
	default:
		fmt.Fprintf(stderr, "Error: invalid config format %q (must be toml or yaml)\n", dumpFormat)
		return opts, "", true, 2
	}

	return opts, dump, false, 0
}
