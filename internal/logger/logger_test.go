package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.input); got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v; want %v", tc.input, got, tc.expected)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "JSON")

	l.Debug("hidden")
	l.Info("lots_loaded", "count", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "lots_loaded" || rec["count"] != float64(7) {
		t.Errorf("record = %v", rec)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "text")

	l.Debug("resolving", "query", "sac")

	if out := buf.String(); !strings.Contains(out, "msg=resolving") || !strings.Contains(out, "query=sac") {
		t.Errorf("unexpected text output %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on empty context should return the default logger")
	}

	var buf bytes.Buffer
	l := New(&buf, "info", "text").With("request_id", "r-1")
	ctx := WithContext(context.Background(), l)

	FromContext(ctx).Info("hit")
	if !strings.Contains(buf.String(), "request_id=r-1") {
		t.Errorf("request_id missing from %q", buf.String())
	}
}
