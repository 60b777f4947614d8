// Package history keeps the shell's command history and persists it to an
// append-only log file named by the HISTFILE environment variable.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// EnvHistFile names the environment variable holding the history file path.
const EnvHistFile = "HISTFILE"

// History is an in-memory command log with a watermark tracking how much of
// it has already been persisted, so saves append only new entries.
type History struct {
	fs afero.Fs

	entries []string
	written int

	// limit caps the in-memory entry count, 0 means unlimited.
	limit int

	// fallbackPath is used when HISTFILE is unset.
	fallbackPath string
}

func New(fs afero.Fs) *History {
	return &History{fs: fs}
}

// SetLimit caps the number of entries kept in memory. Older entries are
// discarded first.
func (h *History) SetLimit(limit int) {
	h.limit = limit
	h.trim()
}

func (h *History) trim() {
	if h.limit <= 0 || len(h.entries) <= h.limit {
		return
	}
	drop := len(h.entries) - h.limit
	h.entries = append([]string(nil), h.entries[drop:]...)
	h.written -= drop
	if h.written < 0 {
		h.written = 0
	}
}

// Add records one command line. Empty lines are ignored.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)
	h.trim()
}

// Entries returns the recorded history, oldest first. The returned slice is
// shared; callers must not modify it.
func (h *History) Entries() []string {
	return h.entries
}

// Path returns the persistence path: HISTFILE if set, else the fallback
// configured at startup.
func (h *History) Path() string {
	if path := os.Getenv(EnvHistFile); path != "" {
		return path
	}
	return h.fallbackPath
}

// SetFallbackPath sets the path used when HISTFILE is unset, typically from
// the shell configuration.
func (h *History) SetFallbackPath(path string) {
	h.fallbackPath = path
}

// Load reads the history file into memory. A missing or unreadable file is
// not an error; the shell starts with whatever could be read.
func (h *History) Load() {
	path := h.Path()
	if path == "" {
		return
	}
	if err := h.readFrom(path); err != nil {
		return
	}
	h.written = len(h.entries)
}

// Save appends entries recorded since the last save to the history file.
func (h *History) Save() {
	path := h.Path()
	if path == "" {
		return
	}
	_ = h.appendTo(path)
}

// ReadFile merges entries from an arbitrary file (history -r).
func (h *History) ReadFile(path string) error {
	if err := h.readFrom(path); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// WriteFile rewrites path with the full history (history -w).
func (h *History) WriteFile(path string) error {
	fd, err := h.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer fd.Close()

	for _, entry := range h.entries {
		if _, err := fmt.Fprintln(fd, entry); err != nil {
			return fmt.Errorf("history: %w", err)
		}
	}
	return nil
}

// AppendFile appends unsaved entries to path and advances the watermark
// (history -a).
func (h *History) AppendFile(path string) error {
	if err := h.appendTo(path); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

func (h *History) readFrom(path string) error {
	fd, err := h.fs.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.trim()
	return scanner.Err()
}

func (h *History) appendTo(path string) error {
	fd, err := h.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer fd.Close()

	for _, entry := range h.entries[h.written:] {
		if _, err := fmt.Fprintln(fd, entry); err != nil {
			return err
		}
	}
	h.written = len(h.entries)
	return nil
}
