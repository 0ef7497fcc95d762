package run

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the logger described by cfg. Logs go to stderr unless
// cfg names a file, which is rotated by size.
// The returned Closer releases the file, if any.
func NewLogger(cfg Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	if !cfg.Log {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}
	}

	var w io.Writer = stderr
	var c io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		w, c = lj, lj
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})), c
}
