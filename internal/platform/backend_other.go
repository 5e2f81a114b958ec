//go:build !linux

package platform

import "errors"

var errX11Unsupported = errors.New("X11 windowing is only supported on linux")

// X11Backend is unavailable on this platform.
type X11Backend struct{}

// NewX11Backend always fails on this platform.
func NewX11Backend() (*X11Backend, error) {
	return nil, errX11Unsupported
}

// Disconnect is a no-op.
func (b *X11Backend) Disconnect() {}

// Displays always fails on this platform.
func (b *X11Backend) Displays() ([]Display, error) {
	return nil, errX11Unsupported
}

// CreateSurface always fails on this platform.
func (b *X11Backend) CreateSurface(name string) (Surface, error) {
	return nil, errX11Unsupported
}

// WaitKey always fails on this platform.
func (b *X11Backend) WaitKey(keys ...string) (string, error) {
	return "", errX11Unsupported
}

func x11Displays() ([]Display, error) {
	return nil, errX11Unsupported
}
