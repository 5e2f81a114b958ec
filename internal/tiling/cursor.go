package tiling

// Point is a screen coordinate.
type Point struct {
	X int
	Y int
}

// LayoutState tracks where the next debug window goes. The zero value starts
// at the top-left corner.
type LayoutState struct {
	cursor Point
	margin int
}

// NewLayoutState creates a cursor at (0,0). A non-positive margin selects
// DefaultMargin.
func NewLayoutState(margin int) *LayoutState {
	if margin <= 0 {
		margin = DefaultMargin
	}
	return &LayoutState{margin: margin}
}

// Cursor returns the current cursor position.
func (s *LayoutState) Cursor() Point {
	return s.cursor
}

// Margin returns the gap between consecutive windows.
func (s *LayoutState) Margin() int {
	if s.margin <= 0 {
		return DefaultMargin
	}
	return s.margin
}

// Reset moves the cursor back to (0,0).
func (s *LayoutState) Reset() {
	s.cursor = Point{}
}

// Place records that a window was put at p, then advances the cursor past it.
func (s *LayoutState) Place(p Point, win, screen Size) Point {
	s.cursor = Advance(p, win, screen, s.Margin())
	return s.cursor
}

// Advance computes the shelf-packing position following a window of size win
// placed at cur. Rows run left to right; when a row overflows the cursor wraps
// to the next shelf, and back to the top once the screen height is exhausted.
// Windows may overlap after that point.
//
// The overflow test is strict, so an exact fit (cur.X+win.Width+margin ==
// screen.Width) leaves the cursor at X == screen.Width. This is intended: the
// next window placed there is clamped back on screen by Plan.
func Advance(cur Point, win, screen Size, margin int) Point {
	nextW := win.Width + margin
	nextH := win.Height + margin

	if cur.X+nextW > screen.Width {
		next := Point{X: 0, Y: cur.Y + nextH}
		if cur.Y+nextH > screen.Height {
			next.Y = 0
		}
		return next
	}
	return Point{X: cur.X + nextW, Y: cur.Y}
}
