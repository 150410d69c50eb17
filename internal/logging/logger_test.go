package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("processing file", String(FieldSource, "IMG_0001.JPG"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record[FieldSource] != "IMG_0001.JPG" {
		t.Errorf("missing source attr in %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Error("New() should reject unknown formats")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Error("discarded", Error(nil))
	if logger.Enabled(nil, slog.LevelError) {
		t.Error("nop logger should be disabled")
	}
}

func TestNewComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	NewComponentLogger(base, "scanner").Info("ready")

	if !strings.Contains(buf.String(), `"component":"scanner"`) {
		t.Errorf("component attr missing: %s", buf.String())
	}

	if NewComponentLogger(nil, "scanner") == nil {
		t.Error("nil base should fall back to nop logger")
	}
}
