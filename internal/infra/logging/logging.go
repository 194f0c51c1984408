package logging

import (
	"io"
	"log/slog"
)

// Level picks the log level from the command line flags.
// debug wins over quiet, quiet wins over verbose.
func Level(debug, quiet bool, verbose int) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	case verbose > 0:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New builds the process logger, writing to w, and installs it as the
// slog default.
func New(w io.Writer, logFormat string, level slog.Level, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}

	var handler slog.Handler

	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
