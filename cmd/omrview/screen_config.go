package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/omrview/internal/config"
	"github.com/1broseidon/omrview/internal/platform"
	"github.com/1broseidon/omrview/internal/screenconfig"
	"github.com/1broseidon/omrview/internal/x11"
)

func runScreenConfig(args []string) int {
	fs := flag.NewFlagSet("screen-config", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: omrview screen-config")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Detect the primary monitor and create config.json with display")
		fmt.Fprintln(os.Stderr, "dimensions that keep template layout windows on screen.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "screen-config takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, logger, ok := loadSettings()
	if !ok {
		return 1
	}
	// The screenshot enumerator can still work without X11, so a missing
	// DISPLAY is only logged here.
	if err := x11.EnsureDisplayEnv(cfg.Display, cfg.XAuthority); err != nil {
		logger.Debug("X display environment unavailable", "error", err)
	}

	fmt.Println("OMRChecker Screen Configuration Generator")
	fmt.Println("========================================")

	gen := &screenconfig.Generator{
		Displays: platform.DefaultEnumerator(),
		Prompter: screenconfig.NewPrompter(os.Stdin, os.Stdout),
		Path:     cfg.ConfigFile,
		Out:      os.Stdout,
		Logger:   logger,
	}
	_, err := gen.Run()
	return screenConfigExitCode(os.Stderr, err)
}

// screenConfigExitCode reports err and maps it to an exit code. A cancelled
// run has a nil error and exits 0.
func screenConfigExitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var queryErr *screenconfig.DisplayQueryError
	var writeErr *screenconfig.FileWriteError
	switch {
	case errors.Is(err, screenconfig.ErrNoMonitor):
		fmt.Fprintln(w, "Error: No monitors detected")
	case errors.As(err, &queryErr):
		fmt.Fprintf(w, "Error detecting screen: %v\n", queryErr.Err)
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "omrview needs a running X server to detect the monitor size.")
		fmt.Fprintln(w, "Export DISPLAY (e.g. DISPLAY=:0) or set it in the settings file:")
		if path, perr := config.DefaultConfigPath(); perr == nil {
			fmt.Fprintf(w, "  %s\n", path)
		}
		fmt.Fprintln(w, "  display: \":0\"")
	case errors.As(err, &writeErr):
		fmt.Fprintf(w, "Error creating config file: %v\n", writeErr.Err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return 1
}
