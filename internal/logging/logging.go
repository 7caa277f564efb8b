package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the package-level structured logger configured by Setup.
var Logger *slog.Logger = slog.Default()

// Verbose reports whether debug logging is enabled.
var Verbose bool

// Setup configures the package logger. Debug records are emitted only
// when verbose is set; jsonOutput switches the handler to JSON. A nil
// writer falls back to stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
}

// Debug logs a debug-level record.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info-level record.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warn-level record.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error-level record.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
