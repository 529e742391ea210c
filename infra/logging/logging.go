// Package logging builds the slog loggers used across jokeboard.
//
// The interactive board owns the terminal, so its logs go to a file or
// nowhere; the headless fetch command logs to stderr.
package logging

import (
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenFile returns a logger appending to path. An empty path yields a
// discarding logger. The returned closer releases the file.
func OpenFile(path, level string) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return Discard(), nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "jokeboard")
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}
