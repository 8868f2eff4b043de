// Package logging configures the process-wide diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config controls basic logger behaviour. Empty fields select warn and text.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// New constructs a slog logger writing to w. Unknown levels or formats are
// rejected.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format: %s (available: text, json)", cfg.Format)
	}
	return slog.New(handler), nil
}

// ParseLevel maps a level name to a slog level. The empty string is warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %s (available: debug, info, warn, error)", level)
}
