package xslog

import (
	"bytes"
	"log/slog"
	"testing"

	go_json "github.com/goccy/go-json"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "Warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "trace", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept", Kind("timeout"))

	var entry map[string]any
	if err := go_json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected exactly one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry[slog.MessageKey] != "kept" {
		t.Errorf("msg = %v, want %q", entry[slog.MessageKey], "kept")
	}
	if entry["kind"] != "timeout" {
		t.Errorf("kind = %v, want %q", entry["kind"], "timeout")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := FromContext(t.Context()); got != slog.Default() {
		t.Errorf("FromContext() without logger = %p, want slog.Default()", got)
	}

	logger := NewLogger(&bytes.Buffer{}, LevelInfo)
	ctx := WithLogger(t.Context(), logger)
	if got := FromContext(ctx); got != logger {
		t.Errorf("FromContext() = %p, want %p", got, logger)
	}
}
