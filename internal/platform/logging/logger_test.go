package logging

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("selection submitted", "team_id", "T001", "rows", 12)

	var record map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("decode log line: %v (line=%q)", err, buf.String())
	}
	if record["msg"] != "selection submitted" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["team_id"] != "T001" {
		t.Fatalf("unexpected team_id: %v", record["team_id"])
	}
	if record["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Fatalf("info record should be filtered at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn record missing: %s", buf.String())
	}
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("odd", "dangling")

	if !strings.Contains(buf.String(), `"dangling":null`) {
		t.Fatalf("expected dangling key with null value, got %s", buf.String())
	}
}

func TestSetMirror_ReceivesEnabledRecords(t *testing.T) {
	var calls atomic.Int32
	SetMirror(func(_ context.Context, _ Level, msg string, _ ...any) {
		if msg == "mirrored" {
			calls.Add(1)
		}
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)
	logger.InfoContext(context.Background(), "mirrored")
	logger.DebugContext(context.Background(), "mirrored")

	if got := calls.Load(); got != 1 {
		t.Fatalf("mirror called %d times, want 1", got)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
}
