package display

import (
	"bytes"
	"errors"
	"image"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/1broseidon/omrview/internal/platform"
	"github.com/1broseidon/omrview/internal/tiling"
)

type fakeSurface struct {
	name     string
	shown    image.Image
	x, y     int
	moves    int
	closed   bool
	visErr   error
	showErr  error
	closeErr error
}

func (s *fakeSurface) Show(img image.Image) error {
	if s.showErr != nil {
		return s.showErr
	}
	s.shown = img
	return nil
}

func (s *fakeSurface) Move(x, y int) error {
	s.x, s.y = x, y
	s.moves++
	return nil
}

func (s *fakeSurface) Visible() (bool, error) {
	if s.visErr != nil {
		return false, s.visErr
	}
	return !s.closed, nil
}

func (s *fakeSurface) Close() error {
	s.closed = true
	return s.closeErr
}

type fakeWindowing struct {
	created  []*fakeSurface
	waits    [][]string
	pressKey string
	waitErr  error
}

func (w *fakeWindowing) CreateSurface(name string) (platform.Surface, error) {
	s := &fakeSurface{name: name}
	w.created = append(w.created, s)
	return s, nil
}

func (w *fakeWindowing) WaitKey(keys ...string) (string, error) {
	w.waits = append(w.waits, keys)
	if w.waitErr != nil {
		return "", w.waitErr
	}
	return w.pressKey, nil
}

func newTestFitter(w *fakeWindowing, screen tiling.Size) (*Fitter, *tiling.LayoutState) {
	layout := tiling.NewLayoutState(tiling.DefaultMargin)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFitter(w, screen, layout, Options{Logger: logger}), layout
}

func TestShow_ScalesAndCentersLargeImage(t *testing.T) {
	w := &fakeWindowing{}
	f, layout := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 2000, 1000))
	if err := f.Show("sheet", img, ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}

	if len(w.created) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(w.created))
	}
	s := w.created[0]
	if got := s.shown.Bounds().Size(); got.X != 900 || got.Y != 450 {
		t.Fatalf("expected shown size 900x450, got %v", got)
	}
	if s.x != 50 || s.y != 175 {
		t.Fatalf("expected position (50,175), got (%d,%d)", s.x, s.y)
	}
	// 50+925 <= 1000, so the cursor stays on the row.
	if c := layout.Cursor(); c.X != 975 || c.Y != 175 {
		t.Fatalf("expected cursor (975,175), got %+v", c)
	}
	if len(w.waits) != 0 {
		t.Fatalf("expected no key wait without pause")
	}
}

func TestShow_SmallImageShownUnchanged(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1920, Height: 1080})

	img := image.NewGray(image.Rect(0, 0, 300, 200))
	if err := f.Show("small", img, ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if w.created[0].shown != image.Image(img) {
		t.Fatalf("expected the original image to be shown without resizing")
	}
}

func TestShow_ReusesRegisteredSurface(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for i := 0; i < 3; i++ {
		if err := f.Show("same", img, ShowOptions{}); err != nil {
			t.Fatalf("show %d: %v", i, err)
		}
	}
	if len(w.created) != 1 {
		t.Fatalf("expected a single surface, got %d", len(w.created))
	}
	if w.created[0].moves != 3 {
		t.Fatalf("expected 3 moves, got %d", w.created[0].moves)
	}
}

func TestShow_RecreatesSurfaceWhenQueryFails(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 100, 100))
	if err := f.Show("flaky", img, ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}
	w.created[0].visErr = errors.New("BadWindow")

	if err := f.Show("flaky", img, ShowOptions{}); err != nil {
		t.Fatalf("second show should recover, got %v", err)
	}
	if len(w.created) != 2 {
		t.Fatalf("expected surface to be recreated, got %d surfaces", len(w.created))
	}
	if _, ok := f.TryGetSurface("flaky"); !ok {
		t.Fatalf("expected recreated surface to be registered")
	}
}

func TestTryGetSurface_LogsCloseFailureOfUnavailableSurface(t *testing.T) {
	w := &fakeWindowing{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := NewFitter(w, tiling.Size{Width: 1000, Height: 800}, nil, Options{Logger: logger})

	img := image.NewGray(image.Rect(0, 0, 100, 100))
	if err := f.Show("stale", img, ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}
	w.created[0].visErr = errors.New("BadWindow")
	w.created[0].closeErr = errors.New("BadDrawable")

	if _, ok := f.TryGetSurface("stale"); ok {
		t.Fatalf("expected unavailable surface to be reported missing")
	}
	if !w.created[0].closed {
		t.Fatalf("expected unavailable surface to be closed")
	}
	if !strings.Contains(logs.String(), "BadDrawable") {
		t.Fatalf("expected close failure to be logged, got %q", logs.String())
	}
}

func TestShow_ExplicitPositionIsClamped(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 400, 300))
	pos := image.Pt(900, 700)
	if err := f.Show("corner", img, ShowOptions{Position: &pos}); err != nil {
		t.Fatalf("show: %v", err)
	}
	s := w.created[0]
	if s.x != 600 || s.y != 500 {
		t.Fatalf("expected clamped position (600,500), got (%d,%d)", s.x, s.y)
	}
}

func TestShow_TargetDoesNotBypassScreenClamp(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 2000, 1000))
	target := tiling.Size{Width: 1600, Height: 1200}
	if err := f.Show("target", img, ShowOptions{Target: &target}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := w.created[0].shown.Bounds().Size(); got.X != 900 || got.Y != 450 {
		t.Fatalf("expected 900x450 regardless of target, got %v", got)
	}
}

func TestShow_PauseWaitsClosesAndResetsCursor(t *testing.T) {
	w := &fakeWindowing{pressKey: "q"}
	f, layout := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	img := image.NewGray(image.Rect(0, 0, 100, 100))
	if err := f.Show("first", img, ShowOptions{}); err != nil {
		t.Fatalf("show first: %v", err)
	}
	if err := f.Show("second", img, ShowOptions{Pause: true}); err != nil {
		t.Fatalf("show second: %v", err)
	}

	if len(w.waits) != 1 {
		t.Fatalf("expected one key wait, got %d", len(w.waits))
	}
	if keys := w.waits[0]; len(keys) != 2 || keys[0] != "q" || keys[1] != "Escape" {
		t.Fatalf("unexpected accepted keys: %v", keys)
	}
	for _, s := range w.created {
		if !s.closed {
			t.Fatalf("expected surface %q to be closed", s.name)
		}
	}
	if c := layout.Cursor(); c != (tiling.Point{}) {
		t.Fatalf("expected cursor reset, got %+v", c)
	}
	if _, ok := f.TryGetSurface("first"); ok {
		t.Fatalf("expected registry to be empty after pause")
	}
}

func TestShow_WaitErrorIsReturned(t *testing.T) {
	w := &fakeWindowing{waitErr: platform.ErrNoSurfaces}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	err := f.Show("x", image.NewGray(image.Rect(0, 0, 10, 10)), ShowOptions{Pause: true})
	if !errors.Is(err, platform.ErrNoSurfaces) {
		t.Fatalf("expected ErrNoSurfaces, got %v", err)
	}
}

func TestShow_NilImage(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})

	if err := f.Show("open", image.NewGray(image.Rect(0, 0, 10, 10)), ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}

	if err := f.Show("missing", nil, ShowOptions{}); err != nil {
		t.Fatalf("nil show without pause: %v", err)
	}
	if len(w.created) != 1 || w.created[0].closed {
		t.Fatalf("expected nil image without pause to be a no-op")
	}

	if err := f.Show("missing", nil, ShowOptions{Pause: true}); err != nil {
		t.Fatalf("nil show with pause: %v", err)
	}
	if len(w.created) != 1 {
		t.Fatalf("expected no surface created for nil image")
	}
	if !w.created[0].closed {
		t.Fatalf("expected open surfaces to be closed when pausing on nil image")
	}
	if len(w.waits) != 0 {
		t.Fatalf("expected no key wait for nil image")
	}
}

func TestShow_ShowErrorIsReturned(t *testing.T) {
	w := &fakeWindowing{}
	f, _ := newTestFitter(w, tiling.Size{Width: 1000, Height: 800})
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	if err := f.Show("boom", img, ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}
	w.created[0].showErr = errors.New("no pixmap")
	if err := f.Show("boom", img, ShowOptions{}); err == nil {
		t.Fatalf("expected show error to propagate")
	}
}

func TestIndependentFittersDoNotShareCursor(t *testing.T) {
	screen := tiling.Size{Width: 1000, Height: 800}
	a, layoutA := newTestFitter(&fakeWindowing{}, screen)
	_, layoutB := newTestFitter(&fakeWindowing{}, screen)

	if err := a.Show("a", image.NewGray(image.Rect(0, 0, 100, 100)), ShowOptions{}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if layoutA.Cursor() == (tiling.Point{}) {
		t.Fatalf("expected first cursor to advance")
	}
	if layoutB.Cursor() != (tiling.Point{}) {
		t.Fatalf("expected second cursor untouched, got %+v", layoutB.Cursor())
	}
}
