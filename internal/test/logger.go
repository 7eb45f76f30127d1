// Package test holds helpers shared by package tests.
package test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aki/ti/internal/logger"
)

// NewLogger returns a debug-level logger that writes to the test log, so
// diagnostics only show up for failing or verbose runs.
func NewLogger(t testing.TB) logger.Logger {
	t.Helper()
	return logger.New(
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(tbWriter{t: t}),
	)
}

// CaptureLogger returns a debug-level logger and the buffer it writes to
func CaptureLogger() (logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(&buf),
	), &buf
}

type tbWriter struct {
	t testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
