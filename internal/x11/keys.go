package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

const (
	keysymEscape = 0xff1b
	keysymReturn = 0xff0d
	keysymSpace  = 0x0020
)

// KeysymForName maps a key name to the unshifted keysym reported for it.
// Single printable ASCII characters map to themselves (letters lowercased);
// "Escape", "Return" and "space" are recognized by name.
func KeysymForName(name string) (xproto.Keysym, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "escape", "esc":
		return keysymEscape, nil
	case "return", "enter":
		return keysymReturn, nil
	case "space":
		return keysymSpace, nil
	}

	if len(name) == 1 && name[0] > 0x20 && name[0] < 0x7f {
		return xproto.Keysym(strings.ToLower(name)[0]), nil
	}
	return 0, fmt.Errorf("unsupported key name %q", name)
}
