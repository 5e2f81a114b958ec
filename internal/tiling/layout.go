package tiling

import "math"

// Rect represents a window position and size
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultMargin is the gap left between consecutively placed windows.
const DefaultMargin = 25

// MaxBounds returns the largest image size that may be displayed on a screen,
// leaving room for window decorations and panels: 90% of the width and 80% of
// the height, rounded down.
func MaxBounds(screen Size) Size {
	return Size{
		Width:  screen.Width * 9 / 10,
		Height: screen.Height * 8 / 10,
	}
}

// FitScale returns the factor that fits img inside bounds. It never exceeds 1.
func FitScale(img, bounds Size) float64 {
	if img.Width <= 0 || img.Height <= 0 {
		return 1.0
	}
	scaleX := float64(bounds.Width) / float64(img.Width)
	scaleY := float64(bounds.Height) / float64(img.Height)
	return math.Min(math.Min(scaleX, scaleY), 1.0)
}

// ScaledSize applies scale to img. The height is derived from the new width so
// the aspect ratio follows the width, but never exceeds the scaled height.
func ScaledSize(img Size, scale float64) Size {
	if scale >= 1.0 || img.Width <= 0 {
		return img
	}
	// Epsilon absorbs representation error in ratios like 640/1000.
	width := int(math.Floor(float64(img.Width)*scale + 1e-9))
	if width < 1 {
		width = 1
	}
	height := img.Height * width / img.Width
	// A width raised to 1 would otherwise inflate very tall images.
	if maxH := int(math.Floor(float64(img.Height)*scale + 1e-9)); height > maxH {
		height = maxH
	}
	if height < 1 {
		height = 1
	}
	return Size{Width: width, Height: height}
}

// Center returns the top-left corner that centers a window of size win on screen.
func Center(win, screen Size) (x, y int) {
	return (screen.Width - win.Width) / 2, (screen.Height - win.Height) / 2
}

// ClampToScreen keeps a window of size win fully on screen.
func ClampToScreen(x, y int, win, screen Size) (int, int) {
	return clamp(x, 0, screen.Width-win.Width), clamp(y, 0, screen.Height-win.Height)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Placement is the computed geometry for one displayed image.
type Placement struct {
	Scale float64
	Rect
}

// Plan fits img to the screen and positions it. A nil position centers the
// window; an explicit one is used as given. Either way the result is clamped
// on screen.
func Plan(img, screen Size, position *Point) Placement {
	scale := FitScale(img, MaxBounds(screen))
	size := ScaledSize(img, scale)

	var x, y int
	if position != nil {
		x, y = position.X, position.Y
	} else {
		x, y = Center(size, screen)
	}
	x, y = ClampToScreen(x, y, size, screen)

	return Placement{
		Scale: scale,
		Rect: Rect{
			X:      x,
			Y:      y,
			Width:  size.Width,
			Height: size.Height,
		},
	}
}
