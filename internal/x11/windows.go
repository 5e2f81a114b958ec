package x11

import (
	"errors"
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
)

var errWindowDestroyed = errors.New("window has been destroyed")

// ImageWindow is a top-level window whose background pixmap holds an image.
type ImageWindow struct {
	conn   *Connection
	win    *xwindow.Window
	ximg   *xgraphics.Image
	name   string
	width  int
	height int
}

type keyWaiter struct {
	accept  map[xproto.Keysym]string
	pressed string
}

// NewImageWindow creates an unmapped window titled name. Closing it through
// the window manager destroys it.
func (c *Connection) NewImageWindow(name string) (*ImageWindow, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	err = win.CreateChecked(c.Root, 0, 0, 1, 1,
		xproto.CwBackPixel|xproto.CwEventMask,
		0, xproto.EventMaskKeyPress|xproto.EventMaskStructureNotify)
	if err != nil {
		return nil, fmt.Errorf("failed to create window %q: %w", name, err)
	}

	// Best effort: a missing title only affects the window manager decoration.
	_ = ewmh.WmNameSet(c.XUtil, win.Id, name)
	_ = icccm.WmNameSet(c.XUtil, win.Id, name)

	w := &ImageWindow{
		conn:   c,
		win:    win,
		name:   name,
		width:  1,
		height: 1,
	}

	win.WMGracefulClose(func(*xwindow.Window) {
		_ = w.Close()
	})
	xevent.KeyPressFun(c.handleKeyPress).Connect(c.XUtil, win.Id)

	c.mu.Lock()
	c.windows[win.Id] = w
	c.mu.Unlock()

	return w, nil
}

// Show paints img into the window, resizing it to the image size, and maps it.
func (w *ImageWindow) Show(img image.Image) error {
	if w.destroyed() {
		return fmt.Errorf("show %q: %w", w.name, errWindowDestroyed)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("show %q: empty image", w.name)
	}

	ximg := xgraphics.NewConvert(w.conn.XUtil, img)
	w.win.Resize(b.Dx(), b.Dy())
	if err := ximg.XSurfaceSet(w.win.Id); err != nil {
		ximg.Destroy()
		return fmt.Errorf("failed to attach image to %q: %w", w.name, err)
	}
	ximg.XDraw()
	ximg.XPaint(w.win.Id)

	if w.ximg != nil {
		w.ximg.Destroy()
	}
	w.ximg = ximg
	w.width, w.height = b.Dx(), b.Dy()

	w.win.Map()
	return nil
}

// Move places the window's top-left corner at (x, y).
func (w *ImageWindow) Move(x, y int) error {
	if w.destroyed() {
		return fmt.Errorf("move %q: %w", w.name, errWindowDestroyed)
	}

	xu := w.conn.XUtil
	if _, err := ewmh.GetEwmhWM(xu); err != nil {
		// No EWMH window manager: configure the window directly.
		w.win.Move(x, y)
		return nil
	}

	// Use EWMH MoveResize for better WM compatibility
	if err := ewmh.MoveresizeWindow(xu, w.win.Id, x, y, w.width, w.height); err != nil {
		w.win.Move(x, y)
	}
	return nil
}

// Visible reports whether the window is currently viewable.
func (w *ImageWindow) Visible() (bool, error) {
	if w.destroyed() {
		return false, fmt.Errorf("query %q: %w", w.name, errWindowDestroyed)
	}

	attrs, err := xproto.GetWindowAttributes(w.conn.XUtil.Conn(), w.win.Id).Reply()
	if err != nil {
		return false, fmt.Errorf("query %q: %w", w.name, err)
	}
	return attrs.MapState == xproto.MapStateViewable, nil
}

// Close destroys the window and frees its image. Closing twice is a no-op.
func (w *ImageWindow) Close() error {
	c := w.conn
	c.mu.Lock()
	if _, ok := c.windows[w.win.Id]; !ok {
		c.mu.Unlock()
		return nil
	}
	delete(c.windows, w.win.Id)
	remaining := len(c.windows)
	waiting := c.waiter != nil
	c.mu.Unlock()

	if w.ximg != nil {
		w.ximg.Destroy()
		w.ximg = nil
	}
	w.win.Destroy()

	// Nothing left to press a key on.
	if waiting && remaining == 0 {
		xevent.Quit(c.XUtil)
	}
	return nil
}

func (w *ImageWindow) destroyed() bool {
	w.conn.mu.Lock()
	defer w.conn.mu.Unlock()
	_, ok := w.conn.windows[w.win.Id]
	return !ok
}

// WaitForKeys blocks in the X event loop until one of the named keys is
// pressed on an image window and returns its name. If every window is closed
// while waiting, it returns an empty name.
func (c *Connection) WaitForKeys(names ...string) (string, error) {
	accept := make(map[xproto.Keysym]string, len(names))
	for _, name := range names {
		sym, err := KeysymForName(name)
		if err != nil {
			return "", err
		}
		accept[sym] = name
	}

	waiter := &keyWaiter{accept: accept}
	c.mu.Lock()
	c.waiter = waiter
	c.mu.Unlock()

	// xevent.Main keeps running until Quit is set; clear any earlier quit.
	c.XUtil.Quit = false
	xevent.Main(c.XUtil)

	c.mu.Lock()
	c.waiter = nil
	c.mu.Unlock()

	return waiter.pressed, nil
}

func (c *Connection) handleKeyPress(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
	keysym := keybind.KeysymGet(xu, ev.Detail, 0)

	c.mu.Lock()
	waiter := c.waiter
	c.mu.Unlock()
	if waiter == nil {
		return
	}

	if name, ok := waiter.accept[keysym]; ok {
		waiter.pressed = name
		xevent.Quit(xu)
	}
}
