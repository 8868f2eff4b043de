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
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info("hidden")
	log.Warn("shown", "preset", "nominal")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "preset=nominal") {
		t.Errorf("expected text attrs, got %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("computed", "velocity_kmh", 48880.0)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json record: %v", err)
	}
	if rec["velocity_kmh"] != 48880.0 {
		t.Errorf("expected velocity_kmh 48880, got %v", rec["velocity_kmh"])
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(&bytes.Buffer{}, Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
