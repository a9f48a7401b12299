// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where and how much is logged.
type Options struct {
	// Path is the log file. Rotated copies are kept beside it.
	Path  string
	Debug bool
}

// New returns a JSON logger writing to a rotating file, and a closer for the
// file. The terminal belongs to the UI, so nothing is written to stdout or
// stderr.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission)
	if err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	return slog.New(NewHandler(w, opts.Debug)), w, nil
}

// NewHandler returns the JSON handler used for every focuswatch log.
func NewHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// Setup installs a logger built from opts as the slog default.
func Setup(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return closer, nil
}
