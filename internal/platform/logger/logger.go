package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured JSON logger using slog.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a structured JSON logger writing to w.
// Logs go to a separate stream so they never interleave with the
// operator-facing console output.
func NewWithWriter(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
