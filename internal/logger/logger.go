// Package logger provides leveled, printf-style logging to a rotated file.
//
// The terminal belongs to the TUI while a picker is running, so nothing is
// written to stdout or stderr. When no log file is configured all output is
// discarded.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a level name to a Level. Unknown names yield LevelInfo
// and ok=false.
func ParseLevel(s string) (lvl Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var (
	mu     sync.Mutex
	out    = log.New(io.Discard, "", log.LstdFlags)
	level  = LevelInfo
	closer io.Closer
)

// Setup configures the global logger. An empty path discards output.
// Calling Setup again replaces (and closes) the previous destination.
func Setup(levelName, path string) error {
	lvl, ok := ParseLevel(levelName)
	if !ok {
		return fmt.Errorf("unknown log level %q", levelName)
	}

	var w io.Writer = io.Discard
	var c io.Closer
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		w, c = lj, lj
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	out = log.New(w, "", log.LstdFlags)
	level = lvl
	closer = c
	return nil
}

// SetOutput redirects logging to w. Used by tests.
func SetOutput(w io.Writer, lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", 0)
	level = lvl
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(io.Discard, "", log.LstdFlags)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func logf(lvl Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if lvl < level {
		return
	}
	out.Printf("[%s] %s", strings.ToUpper(lvl.String()), fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs at info level.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs at warn level.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error logs at error level.
func Error(format string, args ...any) { logf(LevelError, format, args...) }
