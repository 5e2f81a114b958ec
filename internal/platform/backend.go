package platform

import (
	"errors"
	"image"
)

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes a physical display.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// DisplayEnumerator lists the currently connected displays. The first entry
// is treated as the primary display.
type DisplayEnumerator interface {
	Displays() ([]Display, error)
}

// EnumeratorFunc adapts a plain function to DisplayEnumerator.
type EnumeratorFunc func() ([]Display, error)

// Displays calls f.
func (f EnumeratorFunc) Displays() ([]Display, error) {
	return f()
}

// Surface is a named on-screen window able to show an image.
type Surface interface {
	Show(img image.Image) error
	Move(x, y int) error
	// Visible reports whether the surface is mapped. An error means the
	// surface no longer exists on the display server.
	Visible() (bool, error)
	Close() error
}

// Windowing creates surfaces and reads keys from them.
type Windowing interface {
	CreateSurface(name string) (Surface, error)
	// WaitKey blocks until one of keys is pressed on any open surface and
	// returns the key name that matched.
	WaitKey(keys ...string) (string, error)
}

// ErrNoSurfaces is returned by WaitKey when there is nothing to read keys from.
var ErrNoSurfaces = errors.New("no open surfaces to read keys from")

// Chain tries each enumerator in order and returns the first non-empty result.
type Chain []DisplayEnumerator

// Displays implements DisplayEnumerator.
func (c Chain) Displays() ([]Display, error) {
	var errs []error
	succeeded := false
	for _, e := range c {
		displays, err := e.Displays()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		succeeded = true
		if len(displays) > 0 {
			return displays, nil
		}
	}
	if !succeeded && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}

// DefaultEnumerator queries X11 via RandR first and falls back to the
// cross-platform screenshot enumerator.
func DefaultEnumerator() DisplayEnumerator {
	return Chain{
		EnumeratorFunc(x11Displays),
		ScreenshotEnumerator{},
	}
}
