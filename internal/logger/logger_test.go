package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("defaults to warn level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(WithOutput(&buf))

		l.Info("info message")
		l.Warn("warn message")

		output := buf.String()
		if strings.Contains(output, "info message") {
			t.Error("info message should not appear at the default level")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("warn message should appear at the default level")
		}
	})

	t.Run("debug with fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(WithOutput(&buf), WithDebug())

		l.Debug("loaded sheet", "work", 3)
		output := buf.String()

		if !strings.Contains(output, "loaded sheet") {
			t.Errorf("expected message in output, got: %s", output)
		}
		if !strings.Contains(output, "work=3") {
			t.Errorf("expected work=3 in output, got: %s", output)
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(WithOutput(&buf), WithFormat(FormatJSON), WithLevel(slog.LevelInfo))

		l.With("sheet", "/tmp/x").Info("saved")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
		}
		if entry["msg"] != "saved" || entry["sheet"] != "/tmp/x" {
			t.Errorf("unexpected entry: %v", entry)
		}
	})
}

func TestWithGroup(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithDebug()).WithGroup("engine")

	l.Debug("start", "name", "writing")
	if !strings.Contains(buf.String(), "engine.name=writing") {
		t.Errorf("expected grouped field, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext should fall back to a no-op logger")
	}

	var buf bytes.Buffer
	l := New(WithOutput(&buf))
	ctx := WithContext(context.Background(), l)

	FromContext(ctx).Error("boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected context logger to be used, got: %s", buf.String())
	}
}
