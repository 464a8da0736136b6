package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"photosync/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. Logs go to stderr, and also to a
// rotating file when LOG_FILE is set. The returned Closer releases the file.
func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	var w io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		f := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MiB
			MaxBackups: 3,
			MaxAge:     28, // Days
			LocalTime:  true,
		}
		w = io.MultiWriter(stderr, f)
		closer = f
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closer
}
