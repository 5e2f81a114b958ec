package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/omrview/internal/platform"
	"github.com/1broseidon/omrview/internal/x11"
)

type monitorJSON struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Output JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: omrview monitors [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List detected monitors. The first one is used as the primary.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, logger, ok := loadSettings()
	if !ok {
		return 1
	}
	if err := x11.EnsureDisplayEnv(cfg.Display, cfg.XAuthority); err != nil {
		logger.Debug("X display environment unavailable", "error", err)
	}

	displays, err := platform.DefaultEnumerator().Displays()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list monitors: %v\n", err)
		return 1
	}
	if err := printMonitors(os.Stdout, displays, *jsonOut); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printMonitors(w io.Writer, displays []platform.Display, asJSON bool) error {
	if asJSON {
		out := make([]monitorJSON, 0, len(displays))
		for i, d := range displays {
			out = append(out, monitorJSON{
				ID:      d.ID,
				Name:    d.Name,
				X:       d.Bounds.X,
				Y:       d.Bounds.Y,
				Width:   d.Bounds.Width,
				Height:  d.Bounds.Height,
				Primary: i == 0,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(displays) == 0 {
		fmt.Fprintln(w, "No monitors detected")
		return nil
	}
	for i, d := range displays {
		marker := ""
		if i == 0 {
			marker = " (primary)"
		}
		fmt.Fprintf(w, "%d: %s %dx%d+%d+%d%s\n", d.ID, d.Name, d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y, marker)
	}
	return nil
}
