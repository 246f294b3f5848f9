// Package logging builds the application logger. The TUI owns the terminal,
// so records go to a rotating log file instead of stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile is the log path relative to the user's home directory.
const DefaultFile = ".pondeditor/pondeditor.log"

// Options controls logger construction.
type Options struct {
	Level string // debug|info|warn|error
	File  string // empty means DefaultFile under $HOME
}

// New creates a logger writing text records to a rotated file.
// The returned closer flushes and closes the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	path := opts.File
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(home, DefaultFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	w := &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
	return NewWithWriter(w, ParseLevel(opts.Level)), w, nil
}

// NewWithWriter creates a logger that writes to w.
// It standardizes the "error" key to "err".
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name to slog.Level; unknown names mean info.
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
