// Package logger es el logger estructurado del servicio (sobre slog).
// Salida text o json según LOG_FORMAT; nivel según LOG_LEVEL.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

// New crea el logger. App (si viene) queda como campo base en cada línea.
func New(opts Options) Logger {
	ho := &slog.HandlerOptions{Level: opts.Level.slog()}

	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(os.Stdout, ho)
	default:
		h = slog.NewTextHandler(os.Stdout, ho)
	}

	s := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		s = s.With("app", app)
	}

	return &slogLogger{s: s}
}

// NewFromEnv crea el logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

type slogLogger struct {
	s *slog.Logger
}

func (l *slogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &slogLogger{s: l.s.With(attrs(fields)...)}
}

func (l *slogLogger) Debug(msg string, fields map[string]any) { l.s.Debug(msg, attrs(fields)...) }
func (l *slogLogger) Info(msg string, fields map[string]any)  { l.s.Info(msg, attrs(fields)...) }
func (l *slogLogger) Warn(msg string, fields map[string]any)  { l.s.Warn(msg, attrs(fields)...) }
func (l *slogLogger) Error(msg string, fields map[string]any) { l.s.Error(msg, attrs(fields)...) }

func attrs(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out = append(out, k, v)
	}
	return out
}
