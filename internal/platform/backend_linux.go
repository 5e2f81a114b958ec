//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/omrview/internal/x11"
)

// X11Backend wraps an X11 connection behind the platform interfaces.
type X11Backend struct {
	conn *x11.Connection
}

var (
	_ DisplayEnumerator = (*X11Backend)(nil)
	_ Windowing         = (*X11Backend)(nil)
)

// NewX11Backend opens a new X11 connection.
func NewX11Backend() (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &X11Backend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *X11Backend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Displays returns all active displays in CRTC order.
func (b *X11Backend) Displays() ([]Display, error) {
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, Display{
			ID:   m.ID,
			Name: m.Name,
			Bounds: Rect{
				X:      m.X,
				Y:      m.Y,
				Width:  m.Width,
				Height: m.Height,
			},
		})
	}
	return displays, nil
}

// CreateSurface creates an unmapped image window titled name.
func (b *X11Backend) CreateSurface(name string) (Surface, error) {
	win, err := b.conn.NewImageWindow(name)
	if err != nil {
		return nil, err
	}
	return win, nil
}

// WaitKey runs the X event loop until one of keys is pressed on an image window.
func (b *X11Backend) WaitKey(keys ...string) (string, error) {
	if b.conn.OpenWindows() == 0 {
		return "", ErrNoSurfaces
	}
	return b.conn.WaitForKeys(keys...)
}

func x11Displays() ([]Display, error) {
	b, err := NewX11Backend()
	if err != nil {
		return nil, err
	}
	defer b.Disconnect()
	return b.Displays()
}
