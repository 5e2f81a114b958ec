// Package screenconfig derives a config.json sized for the primary monitor so
// template layout windows fit on screen.
package screenconfig

import (
	"errors"
	"fmt"

	"github.com/1broseidon/omrview/internal/platform"
)

// ErrNoMonitor is returned when the enumerator reports no monitors.
var ErrNoMonitor = errors.New("no monitors detected")

// DisplayQueryError wraps a failure to enumerate displays.
type DisplayQueryError struct {
	Err error
}

func (e *DisplayQueryError) Error() string {
	return fmt.Sprintf("failed to detect screen: %v", e.Err)
}

func (e *DisplayQueryError) Unwrap() error {
	return e.Err
}

// DetectPrimary returns the first display reported by enumerator.
func DetectPrimary(enumerator platform.DisplayEnumerator) (platform.Display, error) {
	displays, err := enumerator.Displays()
	if err != nil {
		return platform.Display{}, &DisplayQueryError{Err: err}
	}
	if len(displays) == 0 {
		return platform.Display{}, ErrNoMonitor
	}

	primary := displays[0]
	if primary.Bounds.Width <= 0 || primary.Bounds.Height <= 0 {
		return platform.Display{}, &DisplayQueryError{
			Err: fmt.Errorf("monitor %q reports invalid size %dx%d", primary.Name, primary.Bounds.Width, primary.Bounds.Height),
		}
	}
	return primary, nil
}

// RecommendedDimensions returns 80% of the screen width and 70% of its height,
// rounded down and never below 800x600.
func RecommendedDimensions(screen platform.Display) (width, height int) {
	width = max(MinDisplayWidth, screen.Bounds.Width*8/10)
	height = max(MinDisplayHeight, screen.Bounds.Height*7/10)
	return width, height
}

// Synthesize builds the config document for screen.
func Synthesize(screen platform.Display) Document {
	width, height := RecommendedDimensions(screen)
	return DefaultDocument(width, height)
}
