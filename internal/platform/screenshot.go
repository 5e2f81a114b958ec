package platform

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// ScreenshotEnumerator lists displays through github.com/kbinani/screenshot,
// which works on Windows and macOS as well as X11.
type ScreenshotEnumerator struct{}

var (
	numActiveDisplaysFn = screenshot.NumActiveDisplays
	getDisplayBoundsFn  = screenshot.GetDisplayBounds
)

// Displays implements DisplayEnumerator.
func (ScreenshotEnumerator) Displays() ([]Display, error) {
	n := numActiveDisplaysFn()
	if n <= 0 {
		return nil, nil
	}

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		b := getDisplayBoundsFn(i)
		if b.Dx() <= 0 || b.Dy() <= 0 {
			continue
		}
		displays = append(displays, Display{
			ID:   i,
			Name: fmt.Sprintf("display-%d", i),
			Bounds: Rect{
				X:      b.Min.X,
				Y:      b.Min.Y,
				Width:  b.Dx(),
				Height: b.Dy(),
			},
		})
	}
	return displays, nil
}
