package logging

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleHandler_Format(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(NewConsoleHandler(&buf, nil)).With("scope", "reconcile")

	logger.Info("matched", "transaction", "2001", "attachment", "3001")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "[reconcile]")
	assert.Contains(t, out, "matched transaction=2001 attachment=3001")
	assert.NotContains(t, out, "scope=", "scope attr is shown in brackets, not as key=value")
}

func TestConsoleHandler_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	level := slog.LevelWarn
	logger := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: level}))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
