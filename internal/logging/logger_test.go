package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase INFO", "INFO", slog.LevelInfo},
		{"uppercase TRACE", "TRACE", LevelTrace},
		{"mixed case Debug", "Debug", slog.LevelDebug},
		{"unknown defaults to info", "unknown", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", &buf)

	logger.Debug("visible debug")
	logger.Log(context.Background(), LevelTrace, "hidden trace")

	out := buf.String()
	if !strings.Contains(out, "visible debug") {
		t.Errorf("debug logger missing debug message: %q", out)
	}
	if strings.Contains(out, "hidden trace") {
		t.Errorf("debug logger leaked trace message: %q", out)
	}
}

func TestNewLoggerTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)

	logger.Log(context.Background(), LevelTrace, "trace message")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace output missing TRACE label: %q", buf.String())
	}
}

func TestNewCheckLoggerInfoLevel(t *testing.T) {
	dir := t.TempDir()

	cl := NewCheckLogger(dir, "info")
	if cl != nil {
		t.Error("NewCheckLogger(info) != nil, want nil")
	}

	// No file should exist.
	if _, err := os.Stat(filepath.Join(dir, "checks.jsonl")); !os.IsNotExist(err) {
		t.Error("checks.jsonl was created at info level")
	}
}

func TestCheckLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()

	cl := NewCheckLogger(dir, "debug")
	if cl == nil {
		t.Fatal("NewCheckLogger(debug) = nil, want logger")
	}
	defer cl.Close()

	cl.Log(map[string]any{"check": "ZZ stabilizer on |00⟩", "percent": 100.0, "passed": true})
	cl.Close()

	data, err := os.ReadFile(filepath.Join(dir, "checks.jsonl"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if entry["check"] != "ZZ stabilizer on |00⟩" {
		t.Errorf("check = %v, want ZZ stabilizer on |00⟩", entry["check"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry missing auto-populated time field")
	}
}

func TestCheckLoggerNilSafe(t *testing.T) {
	var cl *CheckLogger
	cl.Log(map[string]any{"check": "x"})
	cl.Close()
}
