package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/omrview/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "screen-config":
		os.Exit(runScreenConfig(os.Args[2:]))
	case "show":
		os.Exit(runShow(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: omrview <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  screen-config       Create config.json sized for the primary monitor")
	fmt.Fprintln(w, "  show                Show images in screen-fitted debug windows")
	fmt.Fprintln(w, "  monitors            List detected monitors")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print effective settings")
	fmt.Fprintln(w, "  config validate     Validate the settings file")
	fmt.Fprintln(w, "  config path         Print the settings file path")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'omrview <command> --help' for command-specific options.")
}

// loadSettings loads the settings file and builds the process logger. Errors
// are reported to stderr.
func loadSettings() (*config.Config, *slog.Logger, bool) {
	res, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		return nil, nil, false
	}
	return res.Config, newLogger(os.Stderr, res.Config.LogLevel), true
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}
