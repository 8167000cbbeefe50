package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

// Interface is the structured logger handed to every component.
// Key/value pairs follow slog conventions.
type Interface interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	With(keysAndValues ...any) Interface
	// Named scopes the logger to a component. Nested names join with ".".
	Named(name string) Interface
}

// slogLogger keeps the unnamed base so renaming replaces the "logger"
// attr rather than repeating it.
type slogLogger struct {
	base   *slog.Logger
	name   string
	logger *slog.Logger
}

// NewLogger wraps the process-wide logger installed by Init.
func NewLogger() Interface {
	return New(Get())
}

func New(l *slog.Logger) Interface {
	return named(l, "")
}

func named(base *slog.Logger, name string) *slogLogger {
	l := &slogLogger{base: base, name: name, logger: base}
	if name != "" {
		l.logger = base.With("logger", name)
	}
	return l
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) {
	l.log(slog.LevelDebug, msg, keysAndValues)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...any) {
	l.log(slog.LevelInfo, msg, keysAndValues)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...any) {
	l.log(slog.LevelWarn, msg, keysAndValues)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues)
}

func (l *slogLogger) With(keysAndValues ...any) Interface {
	return named(l.base.With(keysAndValues...), l.name)
}

func (l *slogLogger) Named(name string) Interface {
	if l.name != "" {
		name = strings.Join([]string{l.name, name}, ".")
	}
	return named(l.base, name)
}

// log records the caller of the exported method, not this wrapper, as the
// record's source.
func (l *slogLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any)    {}
func (nopLogger) Infow(string, ...any)     {}
func (nopLogger) Warnw(string, ...any)     {}
func (nopLogger) Errorw(string, ...any)    {}
func (n nopLogger) With(...any) Interface  { return n }
func (n nopLogger) Named(string) Interface { return n }
