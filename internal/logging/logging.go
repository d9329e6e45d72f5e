// Package logging sets up structured logging for the command line tools.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// NewLogger creates a structured logger writing text, or JSON when json is set.
func NewLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel accepts debug, info, warn or error, in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// LogError logs a failed step of the command. Any args are passed through
// as slog key-value pairs or attributes.
func LogError(logger *slog.Logger, message string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(message, append([]any{slog.String("error", err.Error())}, args...)...)
}

// LogOperation logs a completed step of the command along with how long it
// took since start.
func LogOperation(logger *slog.Logger, operation string, start time.Time, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(operation, append(args, slog.Duration("duration", time.Since(start)))...)
}
