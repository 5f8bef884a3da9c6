package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleLoggerRendersComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	NewComponentLogger(logger, "inspect").Info("resolved property",
		String("property", "focal_length"),
		String("value", "80.0 mm"))

	line := buf.String()
	if !strings.Contains(line, "INF") {
		t.Fatalf("expected level label in output: %q", line)
	}
	if !strings.Contains(line, "[inspect]") {
		t.Fatalf("expected component in output: %q", line)
	}
	if !strings.Contains(line, `value="80.0 mm"`) {
		t.Fatalf("expected quoted attr value in output: %q", line)
	}
}

func TestNewConsoleLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewJSONLoggerEmitsCanonicalKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("probe complete", String(FieldPath, "EXAMPLE.MOV"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["msg"] != "probe complete" {
		t.Fatalf("unexpected msg: %v", decoded["msg"])
	}
	if decoded["level"] != "info" {
		t.Fatalf("unexpected level: %v", decoded["level"])
	}
	if decoded[FieldPath] != "EXAMPLE.MOV" {
		t.Fatalf("unexpected path attr: %v", decoded[FieldPath])
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatal("expected ts key in JSON output")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere", Error(nil))
	if logger.Enabled(nil, 0) {
		t.Fatal("no-op logger should report disabled")
	}
}
