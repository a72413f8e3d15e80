// Package logger provides leveled session logging for ovhdata-cli.
//
// Every invocation is a session. Lines at or above the current level go to
// the session log file under the temp directory, so a failed command can be
// inspected later with "ovhdata-cli debug <session id>". From level Info up
// they are also written to stderr.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Level is the verbosity selected with -v.
type Level int

const (
	// LevelQuiet logs warnings and errors to the session file only.
	LevelQuiet Level = iota
	// LevelInfo adds informational lines and mirrors them to stderr.
	LevelInfo
	// LevelDebug logs everything.
	LevelDebug
)

type severity int

const (
	sevDebug severity = iota
	sevInfo
	sevWarn
	sevError
)

var severityNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

const sessionFileSuffix = "-ovhdata-cli.log"

var (
	mu         sync.RWMutex
	level      Level
	output     io.Writer = os.Stderr
	file       io.WriteCloser
	jsonFormat bool
	session    string
	now        = time.Now
)

// SetLevel sets the verbosity.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbosity maps a -v count to a level.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		SetLevel(LevelQuiet)
	case count == 1:
		SetLevel(LevelInfo)
	default:
		SetLevel(LevelDebug)
	}
}

// CurrentLevel returns the verbosity.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelQuiet)
}

// IsVerbose returns true if anything is mirrored to stderr.
func IsVerbose() bool {
	return CurrentLevel() >= LevelInfo
}

// SetJSON switches to one JSON object per line.
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonFormat = enabled
}

// SetOutput sets the writer used for stderr lines.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// NewSessionID returns an id derived from the current time in milliseconds.
func NewSessionID() string {
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// SessionDir is the directory holding the session logs of one context.
func SessionDir(contextID string) string {
	return filepath.Join(os.TempDir(), contextID)
}

// SessionPath is the log file of a session.
func SessionPath(dir, sessionID string) string {
	return filepath.Join(dir, sessionID+sessionFileSuffix)
}

// OpenSession starts writing to the log file of sessionID in dir.
// A previously opened session file is closed.
func OpenSession(dir, sessionID string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	path := SessionPath(dir, sessionID)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return "", fmt.Errorf("open session log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	session = sessionID
	return path, nil
}

// SessionID returns the id of the open session, or "".
func SessionID() string {
	mu.RLock()
	defer mu.RUnlock()
	return session
}

// Close closes the session file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	session = ""
	return err
}

// Debug logs at debug level.
func Debug(format string, args ...any) {
	logf(sevDebug, format, args...)
}

// Info logs at info level.
func Info(format string, args ...any) {
	logf(sevInfo, format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	logf(sevWarn, format, args...)
}

// Error logs an error.
func Error(format string, args ...any) {
	logf(sevError, format, args...)
}

// Section prints a section header on stderr at debug level.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= LevelDebug && !jsonFormat {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func threshold(l Level) severity {
	switch l {
	case LevelQuiet:
		return sevWarn
	case LevelInfo:
		return sevInfo
	default:
		return sevDebug
	}
}

func logf(sev severity, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if sev < threshold(level) {
		return
	}
	line := formatLine(sev, fmt.Sprintf(format, args...))
	if file != nil {
		_, _ = io.WriteString(file, line)
	}
	if level >= LevelInfo {
		_, _ = io.WriteString(output, line)
	}
}

type jsonLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Session string `json:"session,omitempty"`
	Msg     string `json:"msg"`
}

func formatLine(sev severity, msg string) string {
	if !jsonFormat {
		return "[" + severityNames[sev] + "] " + msg + "\n"
	}
	data, err := json.Marshal(jsonLine{
		Time:    now().UTC().Format(time.RFC3339Nano),
		Level:   severityNames[sev],
		Session: session,
		Msg:     msg,
	})
	if err != nil {
		return "[" + severityNames[sev] + "] " + msg + "\n"
	}
	return string(data) + "\n"
}
