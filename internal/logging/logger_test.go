package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_NilAndDisabledAreSafe(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Log(ActionWindowOpen, "window-x-0", nil)
	if err := nilLogger.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}

	l, err := NewLogger(LogConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewLogger disabled: %v", err)
	}
	l.Log(ActionWindowOpen, "window-x-0", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestLogger_WritesSortedDetailsAndFiltersLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "desktop.log")
	l, err := NewLogger(LogConfig{Enabled: true, Level: LevelInfo, FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.now = func() time.Time { return time.Date(2024, 3, 1, 13, 5, 0, 0, time.UTC) }

	l.Log(ActionWindowOpen, "window-My Computer-0", map[string]interface{}{"title": "My Computer", "active": true})
	l.Log(ActionWindowMove, "window-My Computer-0", map[string]interface{}{"x": 10})
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	want := `2024-03-01 13:05:00 [WINDOW-OPEN] subject=window-My Computer-0 active=true title="My Computer"` + "\n"
	if got != want {
		t.Fatalf("log contents:\n%q\nwant:\n%q", got, want)
	}
}

func TestLogger_Rotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desktop.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 1024*1024)), 0600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	l, err := NewLogger(LogConfig{Enabled: true, Level: LevelDebug, FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Log(ActionWindowClose, "window-a-0", nil)
	l.Close()

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "[WINDOW-CLOSE]") {
		t.Fatalf("new log missing entry: %q", data)
	}
}
