// Package logging configures the application logger. The TUI owns the
// terminal, so log output goes to a file rather than stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens (or creates) the log file at path and returns a logger writing
// to it. An empty path or an unopenable file degrades to a discarding
// logger instead of failing startup.
func New(path, level string) (zerolog.Logger, io.Closer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		return zerolog.Nop(), nopCloser{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
