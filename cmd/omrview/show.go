package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/1broseidon/omrview/internal/display"
	"github.com/1broseidon/omrview/internal/imageutil"
	"github.com/1broseidon/omrview/internal/platform"
	"github.com/1broseidon/omrview/internal/screenconfig"
	"github.com/1broseidon/omrview/internal/tiling"
	"github.com/1broseidon/omrview/internal/x11"
)

type showFlags struct {
	pauseEach bool
	tile      bool
	width     int
	height    int
	x         int
	y         int
}

func newShowFlagSet(opts *showFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.BoolVar(&opts.pauseEach, "pause-each", false, "Wait for a key after every image instead of only the last")
	fs.BoolVar(&opts.tile, "tile", false, "Place windows left to right, top to bottom instead of centering")
	fs.IntVar(&opts.width, "width", 0, "Target width, logged only; windows stay within 90% of the screen width (requires --height)")
	fs.IntVar(&opts.height, "height", 0, "Target height, logged only; windows stay within 80% of the screen height (requires --width)")
	fs.IntVar(&opts.x, "x", -1, "Window x position (requires --y)")
	fs.IntVar(&opts.y, "y", -1, "Window y position (requires --x)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: omrview show [options] <image>...")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Show images in debug windows fitted to the primary monitor.")
		fmt.Fprintln(out, "Press the continue key (default q) or Escape on a window to go on.")
		fmt.Fprintln(out, "")
		fs.PrintDefaults()
	}
	return fs
}

func runShow(args []string) int {
	var opts showFlags
	fs := newShowFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "show requires at least one image")
		fs.Usage()
		return 2
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 2
	}

	cfg, logger, ok := loadSettings()
	if !ok {
		return 1
	}
	if err := x11.EnsureDisplayEnv(cfg.Display, cfg.XAuthority); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	backend, err := platform.NewX11Backend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	primary, err := screenconfig.DetectPrimary(backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	screen := tiling.Size{Width: primary.Bounds.Width, Height: primary.Bounds.Height}

	layout := tiling.NewLayoutState(cfg.WindowMargin)
	fitter := display.NewFitter(backend, screen, layout, display.Options{
		ContinueKey: cfg.ContinueKey,
		Logger:      logger,
	})

	paths := fs.Args()
	for i, path := range paths {
		img, err := imageutil.Load(path)
		if err != nil {
			// Shown as nil: skipped, but a pause still closes open windows.
			logger.Error("failed to load image", "path", path, "error", err)
		}

		show := opts.showOptions(fitter, i == len(paths)-1)
		if err := fitter.Show(filepath.Base(path), img, show); err != nil {
			if errors.Is(err, platform.ErrNoSurfaces) {
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			fitter.CloseAll()
			return 1
		}
	}
	return 0
}

func (o showFlags) validate() error {
	if (o.width > 0) != (o.height > 0) {
		return fmt.Errorf("--width and --height must be given together")
	}
	if (o.x >= 0) != (o.y >= 0) {
		return fmt.Errorf("--x and --y must be given together")
	}
	if o.tile && o.x >= 0 {
		return fmt.Errorf("--tile cannot be combined with --x/--y")
	}
	return nil
}

func (o showFlags) showOptions(f *display.Fitter, last bool) display.ShowOptions {
	opts := display.ShowOptions{
		Pause: o.pauseEach || last,
	}
	if o.width > 0 && o.height > 0 {
		opts.Target = &tiling.Size{Width: o.width, Height: o.height}
	}
	switch {
	case o.x >= 0 && o.y >= 0:
		p := image.Pt(o.x, o.y)
		opts.Position = &p
	case o.tile:
		p := f.Cursor()
		opts.Position = &p
	}
	return opts
}
