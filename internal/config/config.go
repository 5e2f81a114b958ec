package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/omrview/internal/x11"
)

const (
	DefaultConfigFile   = "config.json"
	DefaultContinueKey  = "q"
	DefaultWindowMargin = 25
	DefaultLogLevel     = "info"
)

// Config holds the settings of the omrview tool itself.
type Config struct {
	// Display and XAuthority are used when the environment does not provide
	// DISPLAY/XAUTHORITY.
	Display    string `yaml:"display,omitempty"`
	XAuthority string `yaml:"xauthority,omitempty"`

	// ConfigFile is the path screen-config writes to.
	ConfigFile string `yaml:"config_file"`

	// ContinueKey dismisses paused debug windows (Escape always works too).
	ContinueKey string `yaml:"continue_key"`

	// WindowMargin is the gap in pixels between tiled debug windows.
	WindowMargin int `yaml:"window_margin"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		ConfigFile:   DefaultConfigFile,
		ContinueKey:  DefaultContinueKey,
		WindowMargin: DefaultWindowMargin,
		LogLevel:     DefaultLogLevel,
	}
}

// Validate checks settings values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ConfigFile) == "" {
		return fmt.Errorf("config_file must not be empty")
	}
	if _, err := x11.KeysymForName(c.ContinueKey); err != nil {
		return fmt.Errorf("continue_key: %w", err)
	}
	if strings.EqualFold(c.ContinueKey, "escape") || strings.EqualFold(c.ContinueKey, "esc") {
		return fmt.Errorf("continue_key: Escape is always accepted; choose another key")
	}
	if c.WindowMargin < 0 {
		return fmt.Errorf("window_margin must be >= 0, got %d", c.WindowMargin)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a log_level value to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", level)
	}
}
