// Package logging provides structured logging utilities.
//
// Logs are formatted as bracketed console lines:
// [LEVEL] [SCOPE] [HH:MM:SS] message key=value
package logging

import (
	"log/slog"
	"os"

	"github.com/jtkorhonen/docmatch/internal/infrastructure/config"
)

// NewLogger creates a structured logger based on config
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := NewConsoleHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	handler.useColors = cfg.Format == "color"

	return slog.New(handler)
}

// NewLoggerWithScope creates a logger tagged with a subsystem name
// (e.g. "reconcile", "api", "report")
func NewLoggerWithScope(cfg config.LoggingConfig, scope string) *slog.Logger {
	return NewLogger(cfg).With("scope", scope)
}
