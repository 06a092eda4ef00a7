// Package logger holds the process-wide slog logger used by vecctl.
package logger

import (
	"io"
	"log/slog"
)

// L is the global logger instance. It discards all output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Output  io.Writer  // Destination for log records, usually os.Stderr
	Level   slog.Level // Minimum log level
}

// Init configures logging. Call before any log calls.
func Init(opts Options) {
	if !opts.Enabled || opts.Output == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: opts.Level}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
