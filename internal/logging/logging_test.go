package logging

import (
	"bytes"
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
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	buf := &bytes.Buffer{}
	logger := Setup("error", buf)
	logger.Warn("dropped")
	logger.Error("kept", "key", "value")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("warn record written at error level: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "key=value") {
		t.Errorf("error record missing from output: %q", out)
	}
}
