package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger represents application logger.
// It embeds slog.Logger, so records are written with the usual key/value pairs.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger instance writing to stdout.
//
// Parameters:
//   - level: slog level as an integer (-4 debug, 0 info, 4 warn, 8 error)
//   - format: "json" for JSON records, anything else for text
//
// Returns a pointer to the newly created Logger instance.
func New(level int, format string) *Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w.
// Tests pass io.Discard or a buffer here.
//
// Parameters:
//   - w: destination of the records
//   - level: slog level as an integer
//   - format: "json" or "text"
//
// Returns a pointer to the newly created Logger instance.
func NewWithWriter(w io.Writer, level int, format string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
