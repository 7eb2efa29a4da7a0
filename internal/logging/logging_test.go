package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value", "api_token", "my-api-token")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "test message")
	}
	if parsed["key"] != "value" {
		t.Errorf("key = %v, want %q", parsed["key"], "value")
	}
	if parsed["api_token"] != "****oken" {
		t.Errorf("api_token = %v, want masked value", parsed["api_token"])
	}
}

func TestNew_JSONTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

	logger.Log(t.Context(), LevelTrace, "trace message")

	if !strings.Contains(buf.String(), `"level":"TRACE"`) {
		t.Errorf("expected TRACE level name, got: %s", buf.String())
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}
	for _, want := range []string{"test message", "key=value", "INFO"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("default logger should only log warnings and above")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger should not be enabled at any level")
	}
	logger.Error("this is dropped", "key", "value")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info logged at info level", slog.LevelInfo, slog.LevelInfo, true},
		{"debug not logged at info level", slog.LevelInfo, slog.LevelDebug, false},
		{"error logged at info level", slog.LevelInfo, slog.LevelError, true},
		{"info not logged at warn level", slog.LevelWarn, slog.LevelInfo, false},
		{"trace logged at trace level", LevelTrace, LevelTrace, true},
		{"trace not logged at debug level", slog.LevelDebug, LevelTrace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tt.configLevel,
				Format: FormatText,
				Output: &buf,
			})

			logger.Log(t.Context(), tt.logLevel, "test message")

			if hasOutput := buf.Len() > 0; hasOutput != tt.shouldAppear {
				t.Errorf("got output=%v, want output=%v\noutput: %q", hasOutput, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("ForTest logger should capture trace records")
	}
	logger.Debug("debug from test logger", "test", t.Name())
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	for _, in := range []string{"test message\n", "no newline", ""} {
		n, err := tw.Write([]byte(in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != len(in) {
			t.Errorf("Write(%q) returned %d, want %d", in, n, len(in))
		}
	}
}
