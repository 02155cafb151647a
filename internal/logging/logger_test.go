package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/example/evn/internal/ctxutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func useDefault(t *testing.T, level, format string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(level, format, &buf)
	return &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestFromContextAddsRunID(t *testing.T) {
	buf := useDefault(t, "debug", "json")

	ctx := ctxutil.WithRunID(context.Background(), "run-42")
	FromContext(ctx).Debug("decoded", "code", "945121500546")

	entry := decodeEntry(t, buf)
	if entry["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want run-42", entry["run_id"])
	}
	if entry["msg"] != "decoded" {
		t.Errorf("msg = %v, want decoded", entry["msg"])
	}
	if entry["code"] != "945121500546" {
		t.Errorf("code = %v", entry["code"])
	}
}

func TestFromContextWithoutRunID(t *testing.T) {
	buf := useDefault(t, "info", "text")

	FromContext(context.Background()).Info("hello")
	if strings.Contains(buf.String(), "run_id") {
		t.Errorf("unexpected run_id in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("missing message in %q", buf.String())
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	buf := useDefault(t, "warn", "text")

	FromContext(context.Background()).Info("hidden")
	FromContext(context.Background()).Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestWithFields(t *testing.T) {
	buf := useDefault(t, "info", "json")

	ctx := ctxutil.WithRunID(context.Background(), "run-9")
	WithFields(ctx, "country", "PL").Info("generated codes")

	entry := decodeEntry(t, buf)
	if entry["country"] != "PL" {
		t.Errorf("country = %v, want PL", entry["country"])
	}
	if entry["run_id"] != "run-9" {
		t.Errorf("run_id = %v, want run-9", entry["run_id"])
	}
}
