// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Options configures the logger built by New.
type Options struct {
	// Level is the minimum level written.
	Level slog.Level
	// Output is the destination; nil means os.Stderr.
	Output io.Writer
	// ForceText selects the text handler even when Output is not a terminal.
	ForceText bool
}

// New builds a logger writing to opts.Output. Terminals get the human-readable text
// handler, anything else (pipes, files, CI logs) gets one JSON object per line.
//
// Parameters:
//   - opts: the logger options
//
// Returns:
//   - *slog.Logger: the configured logger
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.ForceText || isTerminal(out) {
		return slog.New(slog.NewTextHandler(out, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(out, handlerOpts))
}

// ParseLevel maps a level name to a slog.Level. Unknown or empty names return the fallback.
//
// Parameters:
//   - name: one of debug, info, warn, warning, error (case-insensitive)
//   - fallback: the level returned for unrecognized names
//
// Returns:
//   - slog.Level: the parsed level
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
