package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// ConsoleHandler is a slog.Handler that formats records as
// [LEVEL] [SCOPE] [HH:MM:SS] message key=value key=value
type ConsoleHandler struct {
	w         io.Writer
	level     slog.Level
	mu        *sync.Mutex
	scope     string
	useColors bool
	attrs     []slog.Attr
}

// NewConsoleHandler creates a console handler. Colors are off by
// default; the logger constructor switches them on from config.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	h := &ConsoleHandler{
		w:     w,
		level: slog.LevelInfo,
		mu:    &sync.Mutex{},
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	if h.useColors {
		buf.WriteString(h.levelColor(r.Level))
	}
	buf.WriteString("[")
	buf.WriteString(levelString(r.Level))
	buf.WriteString("]")
	if h.useColors {
		buf.WriteString(colorReset)
	}

	if h.scope != "" {
		buf.WriteString(" [")
		buf.WriteString(h.scope)
		buf.WriteString("]")
	}

	if h.useColors {
		buf.WriteString(colorGray)
	}
	buf.WriteString(" [")
	buf.WriteString(r.Time.Format("15:04:05"))
	buf.WriteString("]")
	if h.useColors {
		buf.WriteString(colorReset)
	}

	buf.WriteString(" ")
	buf.WriteString(r.Message)

	// "scope" is already shown in brackets, skip it as an attr
	for _, attr := range h.attrs {
		if attr.Key != "scope" {
			appendAttr(&buf, attr)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "scope" {
			appendAttr(&buf, a)
		}
		return true
	})

	buf.WriteString("\n")

	_, err := h.w.Write([]byte(buf.String()))
	return err
}

func appendAttr(buf *strings.Builder, a slog.Attr) {
	buf.WriteString(" ")
	buf.WriteString(a.Key)
	buf.WriteString("=")
	buf.WriteString(fmt.Sprint(a.Value.Any()))
}

// WithAttrs returns a new handler with the given attributes added
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	scope := h.scope
	for _, attr := range attrs {
		if attr.Key == "scope" {
			scope = attr.Value.String()
		}
	}

	return &ConsoleHandler{
		w:         h.w,
		level:     h.level,
		mu:        h.mu,
		scope:     scope,
		useColors: h.useColors,
		attrs:     newAttrs,
	}
}

// WithGroup returns the handler unchanged; grouped output is not needed
// for console lines.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *ConsoleHandler) levelColor(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return colorGray
	case slog.LevelInfo:
		return colorCyan
	case slog.LevelWarn:
		return colorYellow
	case slog.LevelError:
		return colorRed
	default:
		return colorReset
	}
}

func levelString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}
