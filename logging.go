package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds the run logger: timestamped leveled text lines on
// console, mirrored into the log file. If the file cannot be opened the
// logger degrades to console only with a warning. The returned func
// closes the file sink.
func newLogger(console io.Writer, logFile, level string) (*slog.Logger, func()) {
	sink := console
	closeSink := func() {}

	var openErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			openErr = err
		} else {
			sink = io.MultiWriter(console, f)
			closeSink = func() { _ = f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
	if openErr != nil {
		logger.Warn("log file unavailable, logging to console only", "path", logFile, "error", openErr)
	}
	return logger, closeSink
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
