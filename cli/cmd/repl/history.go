package repl

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// history holds the lines entered across sessions, oldest first. With an
// empty path it lives in memory only.
type history struct {
	path  string
	lines []string
}

// loadHistory reads the history file at path. A missing file yields an
// empty history without error; an empty path disables persistence.
func loadHistory(path string) (*history, error) {
	h := &history{path: path}
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return h, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			h.lines = append(h.lines, line)
		}
	}
	return h, nil
}

// Append records a line and persists it. Blank lines and immediate
// repeats are skipped.
func (h *history) Append(line string) error {
	if line == "" || (len(h.lines) > 0 && h.lines[len(h.lines)-1] == line) {
		return nil
	}
	h.lines = append(h.lines, line)
	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	return err
}

// Len returns the number of recorded lines.
func (h *history) Len() int { return len(h.lines) }

// At returns the line at index i, oldest first.
func (h *history) At(i int) string { return h.lines[i] }
