package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Component string
	Level     string
	AddSource bool
	Writer    io.Writer
}

func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: opts.AddSource,
	})

	l := slog.New(h)
	if opts.Component != "" {
		l = l.With("component", opts.Component)
	}

	return l
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
