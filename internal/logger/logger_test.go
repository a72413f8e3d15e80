package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func reset() {
	_ = Close()
	SetLevel(LevelQuiet)
	SetJSON(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
	if CurrentLevel() != LevelDebug {
		t.Errorf("expected debug level, got %d", CurrentLevel())
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestSetVerbosity(t *testing.T) {
	defer reset()

	tests := []struct {
		count int
		want  Level
	}{
		{-1, LevelQuiet},
		{0, LevelQuiet},
		{1, LevelInfo},
		{2, LevelDebug},
		{5, LevelDebug},
	}
	for _, tt := range tests {
		SetVerbosity(tt.count)
		if got := CurrentLevel(); got != tt.want {
			t.Errorf("SetVerbosity(%d): got %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestLevels_Stderr(t *testing.T) {
	defer reset()

	tests := []struct {
		name  string
		level Level
		want  string
	}{
		{"quiet", LevelQuiet, ""},
		{"info", LevelInfo, "[INFO] i\n[WARN] w\n[ERROR] e\n"},
		{"debug", LevelDebug, "[DEBUG] d\n[INFO] i\n[WARN] w\n[ERROR] e\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetLevel(tt.level)

			Debug("d")
			Info("i")
			Warn("w")
			Error("e")

			if buf.String() != tt.want {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestDebug_Format(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if buf.String() != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Section("Quiet")
	if buf.Len() > 0 {
		t.Error("expected no section when quiet")
	}

	SetLevel(LevelDebug)
	Section("Request")
	if buf.String() != "\n=== Request ===\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSessionFile_QuietKeepsWarnings(t *testing.T) {
	defer reset()

	var stderr bytes.Buffer
	SetOutput(&stderr)
	dir := t.TempDir()
	path, err := OpenSession(dir, "1700000000000")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if path != SessionPath(dir, "1700000000000") {
		t.Errorf("unexpected path %q", path)
	}
	if !strings.HasSuffix(path, "1700000000000-ovhdata-cli.log") {
		t.Errorf("unexpected file name %q", path)
	}
	if SessionID() != "1700000000000" {
		t.Errorf("unexpected session id %q", SessionID())
	}

	Info("hidden")
	Warn("clock drift")
	Error("failed")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "[WARN] clock drift\n[ERROR] failed\n" {
		t.Errorf("unexpected file content: %q", data)
	}
	if stderr.Len() > 0 {
		t.Errorf("expected nothing on stderr, got %q", stderr.String())
	}
	if SessionID() != "" {
		t.Error("expected session to be cleared after Close")
	}
}

func TestJSONFormat(t *testing.T) {
	defer reset()
	defer func() { now = time.Now }()
	now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)
	SetJSON(true)

	Info("SEND %s", "GET")

	var line map[string]string
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if line["level"] != "INFO" || line["msg"] != "SEND GET" || line["time"] != "2024-01-02T03:04:05Z" {
		t.Errorf("unexpected line: %v", line)
	}
}

func TestNewSessionID(t *testing.T) {
	defer func() { now = time.Now }()
	now = func() time.Time { return time.UnixMilli(1700000000123) }

	if got := NewSessionID(); got != "1700000000123" {
		t.Errorf("unexpected session id %q", got)
	}
}
