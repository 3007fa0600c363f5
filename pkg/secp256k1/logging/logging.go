package logging

import (
	"context"
	"log/slog"
)

// Logger is the surface the library emits lifecycle events through.
// Attributes use log/slog's structured form. Implementations must be safe
// for concurrent use.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return backend{l: logger}
}

type backend struct {
	l *slog.Logger
}

func (b backend) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	b.l.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func (b backend) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	b.l.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (b backend) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	b.l.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

// Redacted stands in for a sensitive value. Secret material must never reach
// the logger; record this attribute in its place.
func Redacted(key string) slog.Attr {
	return slog.String(key, "[redacted]")
}
