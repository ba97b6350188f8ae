package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	inner *slog.Logger
}

// NewLogger returns a Logger writing colored lines to stdout. Unknown levels fall back to info.
func NewLogger(level string) *defaultLogger {
	return NewLoggerWithWriter(os.Stdout, level)
}

func NewLoggerWithWriter(w io.Writer, level string) *defaultLogger {
	return &defaultLogger{inner: slog.New(newConsoleHandler(w, ParseLevel(level)))}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.inner.Debug(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.inner.Info(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.inner.Warn(fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.inner.Error(fmt.Sprintf(msg, a...))
}

type consoleHandler struct {
	l     *log.Logger
	level slog.Level
	attrs []slog.Attr
}

func newConsoleHandler(out io.Writer, level slog.Level) *consoleHandler {
	return &consoleHandler{l: log.New(out, "", 0), level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	var attrs strings.Builder
	writeAttr := func(a slog.Attr) bool {
		attrs.WriteString(color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)

	h.l.Println(r.Time.Format("2006-01-02 15:04:05.000"), level, r.Message, attrs.String())
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		l:     h.l,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}
