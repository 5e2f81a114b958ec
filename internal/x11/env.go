package x11

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	readDirFn  = os.ReadDir
	statFn     = os.Stat
	getenvFn   = os.Getenv
	setenvFn   = os.Setenv
	homeDirFn  = os.UserHomeDir
	socketsDir = "/tmp/.X11-unix"
)

// EnsureDisplayEnv makes sure DISPLAY (and XAUTHORITY when one can be found)
// are set for this process before connecting. Values already present in the
// environment win over the configured ones; as a last resort the highest
// numbered local X socket is used.
func EnsureDisplayEnv(display, xauthority string) error {
	current := strings.TrimSpace(getenvFn("DISPLAY"))
	if current == "" {
		current = strings.TrimSpace(display)
	}
	if current == "" {
		current = detectDisplayFromSockets(socketsDir)
	}
	if current == "" {
		return fmt.Errorf("no X display found; export DISPLAY or set display in the settings file (e.g. display: \":0\")")
	}

	auth := strings.TrimSpace(getenvFn("XAUTHORITY"))
	if auth == "" {
		auth = strings.TrimSpace(xauthority)
	}
	if auth == "" {
		if home, err := homeDirFn(); err == nil && home != "" {
			candidate := filepath.Join(home, ".Xauthority")
			if _, err := statFn(candidate); err == nil {
				auth = candidate
			}
		}
	}

	if err := setenvFn("DISPLAY", current); err != nil {
		return fmt.Errorf("failed to set DISPLAY: %w", err)
	}
	if auth != "" {
		if err := setenvFn("XAUTHORITY", auth); err != nil {
			return fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}
	return nil
}

func detectDisplayFromSockets(dir string) string {
	entries, err := readDirFn(dir)
	if err != nil {
		return ""
	}

	var displays []int
	for _, entry := range entries {
		name := entry.Name()
		if len(name) < 2 || name[0] != 'X' {
			continue
		}
		n, err := strconv.Atoi(name[1:])
		if err != nil {
			continue
		}
		displays = append(displays, n)
	}

	if len(displays) == 0 {
		return ""
	}
	sort.Ints(displays)
	return fmt.Sprintf(":%d", displays[len(displays)-1])
}
