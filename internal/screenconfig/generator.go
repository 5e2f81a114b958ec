package screenconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/1broseidon/omrview/internal/platform"
)

// DefaultFileName is the config file written in the working directory.
const DefaultFileName = "config.json"

// Outcome describes how a generator run ended.
type Outcome int

const (
	OutcomeWritten Outcome = iota
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FileWriteError wraps a failure to persist the config document.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Generator detects the primary screen, confirms with the user and writes
// the config document.
type Generator struct {
	Displays platform.DisplayEnumerator
	Prompter Prompter
	Path     string // defaults to DefaultFileName
	Out      io.Writer
	Logger   *slog.Logger
}

// Run executes the generator. Declining a prompt returns OutcomeCancelled
// with a nil error and leaves the file system untouched.
func (g *Generator) Run() (Outcome, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	path := g.Path
	if path == "" {
		path = DefaultFileName
	}

	screen, err := DetectPrimary(g.Displays)
	if err != nil {
		return OutcomeCancelled, err
	}
	fmt.Fprintf(out, "Detected primary monitor: %dx%d\n", screen.Bounds.Width, screen.Bounds.Height)
	logger.Debug("primary monitor", "name", screen.Name, "id", screen.ID,
		"width", screen.Bounds.Width, "height", screen.Bounds.Height)

	doc := Synthesize(screen)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Recommended display dimensions for your screen:")
	fmt.Fprintf(out, "  Width:  %dpx\n", doc.Dimensions.DisplayWidth)
	fmt.Fprintf(out, "  Height: %dpx\n", doc.Dimensions.DisplayHeight)
	fmt.Fprintln(out, "")

	ok, err := g.Prompter.Confirm(fmt.Sprintf("Create %s with these dimensions?", filepath.Base(path)))
	if err != nil {
		return OutcomeCancelled, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		fmt.Fprintln(out, "Configuration cancelled.")
		return OutcomeCancelled, nil
	}

	exists, err := fileExists(path)
	if err != nil {
		return OutcomeCancelled, &FileWriteError{Path: path, Err: err}
	}
	if exists {
		ok, err := g.Prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(path)))
		if err != nil {
			return OutcomeCancelled, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "Configuration cancelled.")
			return OutcomeCancelled, nil
		}
	}

	if err := Write(path, doc); err != nil {
		return OutcomeCancelled, err
	}
	logger.Info("wrote screen config", "path", path,
		"display_width", doc.Dimensions.DisplayWidth, "display_height", doc.Dimensions.DisplayHeight)

	location := path
	if abs, err := filepath.Abs(path); err == nil {
		location = abs
	}
	fmt.Fprintf(out, "\nCreated %s with optimal dimensions for your screen.\n", filepath.Base(path))
	fmt.Fprintf(out, "File location: %s\n", location)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "To use this configuration:")
	fmt.Fprintf(out, "1. Place this %s in your OMR image directory\n", filepath.Base(path))
	fmt.Fprintln(out, "2. Run OMRChecker with: python main.py --setLayout")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "The template layout windows should now fit properly on your screen.")
	return OutcomeWritten, nil
}

// Write serializes doc as indented JSON to path.
func Write(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
