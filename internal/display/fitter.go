// Package display shows debug images in on-screen windows sized to fit the
// screen and arranged left to right, top to bottom.
package display

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/1broseidon/omrview/internal/imageutil"
	"github.com/1broseidon/omrview/internal/platform"
	"github.com/1broseidon/omrview/internal/tiling"
)

const (
	// DefaultContinueKey dismisses a paused window.
	DefaultContinueKey = "q"
	escapeKey          = "Escape"
)

// ShowOptions controls a single Show call.
type ShowOptions struct {
	// Pause blocks until the continue key or Escape is pressed, then closes
	// every window.
	Pause bool
	// Position places the window instead of centering it.
	Position *image.Point
	// Target overrides the screen size as the target size. The window is
	// still limited to 90% x 80% of the screen.
	Target *tiling.Size
}

// Options configures a Fitter.
type Options struct {
	ContinueKey string
	Logger      *slog.Logger
}

// Fitter fits images to the screen and manages their windows. It is not safe
// for concurrent use.
type Fitter struct {
	windows     platform.Windowing
	screen      tiling.Size
	layout      *tiling.LayoutState
	logger      *slog.Logger
	continueKey string
	surfaces    map[string]platform.Surface
}

// NewFitter creates a Fitter for a screen of the given size. The layout state
// is owned by the caller so independent fitters never share a cursor.
func NewFitter(windows platform.Windowing, screen tiling.Size, layout *tiling.LayoutState, opts Options) *Fitter {
	if layout == nil {
		layout = tiling.NewLayoutState(tiling.DefaultMargin)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	key := opts.ContinueKey
	if key == "" {
		key = DefaultContinueKey
	}
	return &Fitter{
		windows:     windows,
		screen:      screen,
		layout:      layout,
		logger:      logger,
		continueKey: key,
		surfaces:    make(map[string]platform.Surface),
	}
}

// Screen returns the screen size windows are fitted to.
func (f *Fitter) Screen() tiling.Size {
	return f.screen
}

// Cursor returns where the next window would go in the shelf layout.
func (f *Fitter) Cursor() image.Point {
	c := f.layout.Cursor()
	return image.Pt(c.X, c.Y)
}

// Show displays img in the window called name, creating the window if needed.
// A nil image is logged and skipped; with Pause set it still closes every
// window.
func (f *Fitter) Show(name string, img image.Image, opts ShowOptions) error {
	if img == nil {
		f.logger.Info("nil image to show", "name", name)
		if opts.Pause {
			f.CloseAll()
		}
		return nil
	}

	b := img.Bounds()
	original := tiling.Size{Width: b.Dx(), Height: b.Dy()}

	target := f.screen
	if opts.Target != nil {
		target = *opts.Target
	}

	var position *tiling.Point
	if opts.Position != nil {
		position = &tiling.Point{X: opts.Position.X, Y: opts.Position.Y}
	}

	plan := tiling.Plan(original, f.screen, position)
	f.logger.Debug("fitted image",
		"name", name,
		"original", fmt.Sprintf("%dx%d", original.Width, original.Height),
		"target", fmt.Sprintf("%dx%d", target.Width, target.Height),
		"scale", plan.Scale,
		"x", plan.X, "y", plan.Y,
	)

	shown := img
	if plan.Scale < 1.0 {
		shown = imageutil.ResizeToWidth(img, plan.Width)
	}

	surface, err := f.ensureSurface(name)
	if err != nil {
		return err
	}
	if err := surface.Show(shown); err != nil {
		return fmt.Errorf("failed to show %q: %w", name, err)
	}
	if err := surface.Move(plan.X, plan.Y); err != nil {
		return fmt.Errorf("failed to move %q: %w", name, err)
	}

	f.layout.Place(tiling.Point{X: plan.X, Y: plan.Y},
		tiling.Size{Width: plan.Width, Height: plan.Height}, f.screen)

	if !opts.Pause {
		return nil
	}

	f.logger.Info(fmt.Sprintf("Showing '%s' (Size: %dx%d)", name, plan.Width, plan.Height),
		"hint", fmt.Sprintf("press %s on the image to continue, Ctrl+C in the terminal to exit", f.continueKey))

	key, err := f.windows.WaitKey(f.continueKey, escapeKey)
	if err != nil {
		return fmt.Errorf("failed waiting for key: %w", err)
	}
	f.logger.Debug("continue key pressed", "key", key)

	f.CloseAll()
	f.layout.Reset()
	return nil
}

// TryGetSurface returns the open surface registered under name. A surface
// whose visibility query fails is dropped from the registry and reported as
// missing.
func (f *Fitter) TryGetSurface(name string) (platform.Surface, bool) {
	surface, ok := f.surfaces[name]
	if !ok {
		return nil, false
	}
	if _, err := surface.Visible(); err != nil {
		f.logger.Warn("window unavailable, recreating", "name", name, "error", err)
		delete(f.surfaces, name)
		if err := surface.Close(); err != nil {
			f.logger.Debug("failed to close unavailable window", "name", name, "error", err)
		}
		return nil, false
	}
	return surface, true
}

func (f *Fitter) ensureSurface(name string) (platform.Surface, error) {
	if surface, ok := f.TryGetSurface(name); ok {
		return surface, nil
	}
	surface, err := f.windows.CreateSurface(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create window %q: %w", name, err)
	}
	f.surfaces[name] = surface
	return surface, nil
}

// CloseAll closes every registered window.
func (f *Fitter) CloseAll() {
	for name, surface := range f.surfaces {
		if err := surface.Close(); err != nil {
			f.logger.Warn("failed to close window", "name", name, "error", err)
		}
		delete(f.surfaces, name)
	}
}
