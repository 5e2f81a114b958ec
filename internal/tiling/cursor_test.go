package tiling

import "testing"

func TestAdvance_MovesRightWithinRow(t *testing.T) {
	next := Advance(Point{X: 0, Y: 0}, Size{Width: 300, Height: 200}, Size{Width: 1000, Height: 800}, 25)
	if next.X != 325 || next.Y != 0 {
		t.Fatalf("expected (325,0), got (%d,%d)", next.X, next.Y)
	}
}

func TestAdvance_WrapsToNextShelf(t *testing.T) {
	next := Advance(Point{X: 700, Y: 100}, Size{Width: 300, Height: 200}, Size{Width: 1000, Height: 800}, 25)
	if next.X != 0 || next.Y != 325 {
		t.Fatalf("expected (0,325), got (%d,%d)", next.X, next.Y)
	}
}

func TestAdvance_WrapsToTopWhenHeightExhausted(t *testing.T) {
	next := Advance(Point{X: 700, Y: 600}, Size{Width: 300, Height: 200}, Size{Width: 1000, Height: 800}, 25)
	if next.X != 0 || next.Y != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", next.X, next.Y)
	}
}

func TestAdvance_ExactFitLeavesCursorAtScreenEdge(t *testing.T) {
	// 675 + 300 + 25 == 1000 is not greater than the width, so the cursor
	// intentionally lands on x == W instead of wrapping.
	next := Advance(Point{X: 675, Y: 40}, Size{Width: 300, Height: 200}, Size{Width: 1000, Height: 800}, 25)
	if next.X != 1000 || next.Y != 40 {
		t.Fatalf("expected (1000,40), got (%d,%d)", next.X, next.Y)
	}
}

func TestLayoutState_PlaceAndReset(t *testing.T) {
	s := NewLayoutState(0)
	if s.Margin() != DefaultMargin {
		t.Fatalf("expected default margin %d, got %d", DefaultMargin, s.Margin())
	}

	screen := Size{Width: 1000, Height: 800}
	s.Place(Point{X: 100, Y: 175}, Size{Width: 900, Height: 450}, screen)
	// 100+925 > 1000 wraps; 175+475 <= 800 drops a shelf.
	if got := s.Cursor(); got.X != 0 || got.Y != 650 {
		t.Fatalf("expected cursor (0,650), got (%d,%d)", got.X, got.Y)
	}

	s.Reset()
	if got := s.Cursor(); got != (Point{}) {
		t.Fatalf("expected cursor reset to origin, got %+v", got)
	}
}

func TestLayoutState_IndependentInstances(t *testing.T) {
	a := NewLayoutState(10)
	b := NewLayoutState(10)
	a.Place(Point{}, Size{Width: 100, Height: 100}, Size{Width: 1000, Height: 800})
	if b.Cursor() != (Point{}) {
		t.Fatalf("expected second layout state untouched, got %+v", b.Cursor())
	}
}

func TestPlan_CursorAtScreenEdgeIsClampedOnScreen(t *testing.T) {
	screen := Size{Width: 1000, Height: 800}
	cur := Advance(Point{X: 675, Y: 40}, Size{Width: 300, Height: 200}, screen, 25)

	plan := Plan(Size{Width: 100, Height: 100}, screen, &cur)
	if plan.X != 900 || plan.Y != 40 {
		t.Fatalf("expected clamped position (900,40), got (%d,%d)", plan.X, plan.Y)
	}
}
