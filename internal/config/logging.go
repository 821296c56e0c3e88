package config

import (
	"fmt"
	"io"
	"log/slog"
)

func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewLogger builds the process logger. Format "json" selects the JSON
// handler; anything else gets the text handler.
func NewLogger(w io.Writer, l Logging) (*slog.Logger, error) {
	level, err := ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch l.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

// SetupLogging installs the configured logger as the slog default.
func SetupLogging(w io.Writer, l Logging) (*slog.Logger, error) {
	logger, err := NewLogger(w, l)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
