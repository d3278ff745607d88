// Package testutil provides test helpers shared across packages.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mouse-blink/potential/internal/config"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewTestContext returns a context carrying a test logger.
func NewTestContext(t testing.TB) context.Context {
	t.Helper()

	return config.WithLogger(context.Background(), NewTestLogger(t))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))

	return len(p), nil
}
