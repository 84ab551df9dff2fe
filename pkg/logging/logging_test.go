package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil {
			t.Errorf("parseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetupJSON(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	if err := Setup(&buf, "info", "json"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	slog.Info("converted", "groups", 3)

	out := buf.String()
	if !strings.Contains(out, `"msg":"converted"`) {
		t.Errorf("expected JSON record, got %q", out)
	}
	if !strings.Contains(out, `"groups":3`) {
		t.Errorf("expected attribute in record, got %q", out)
	}
}

func TestSetupLevelFilters(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	if err := Setup(&buf, "warn", "text"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	slog.Info("dropped")
	slog.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestSetupAutoOnBufferIsJSON(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	if err := Setup(&buf, "info", "auto"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	slog.Info("probe")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("auto format on a non-terminal should be JSON, got %q", buf.String())
	}
}

func TestSetupRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(&buf, "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
