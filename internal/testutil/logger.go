// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// LogCapture keeps JSON log records for assertions. It is safe for
// concurrent use by request handlers.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// CaptureLogs returns a debug-level logger whose records are kept in the
// returned LogCapture and echoed to t.Log().
func CaptureLogs(t testing.TB) (*slog.Logger, *LogCapture) {
	t.Helper()
	c := &LogCapture{}
	return slog.New(slog.NewJSONHandler(captureWriter{c: c, t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), c
}

type captureWriter struct {
	c *LogCapture
	t testing.TB
}

func (w captureWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	w.t.Log(strings.TrimSpace(string(p)))
	return w.c.buf.Write(p)
}

// Records returns every captured record decoded as a JSON object.
func (c *LogCapture) Records() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(c.buf.String(), "\n") {
		var rec map[string]any
		if line == "" || json.Unmarshal([]byte(line), &rec) != nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Messages returns the msg field of every captured record at the given level,
// or at any level when level is empty.
func (c *LogCapture) Messages(level string) []string {
	var msgs []string
	for _, rec := range c.Records() {
		if level != "" && rec[slog.LevelKey] != level {
			continue
		}
		if msg, ok := rec[slog.MessageKey].(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
