package logging

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a Logger writing JSON lines to path through a
// rotating writer. The interactive shell owns stdout, so everything that is
// not user-facing output goes to this file.
func NewFileLogger(path string, level slog.Level) Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h))
}
