// Package logger provides leveled logging for acrylicwindow.
// When ACRYLIC_DEBUG=1, Debug level is enabled and output is also written to
// acrylicwindow-debug.log in the current directory.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const category = "AcrylicWindow"

var (
	debug    bool
	log      *slog.Logger
	file     *os.File
	initOnce sync.Once
	mu       sync.RWMutex
)

func initLogger() {
	initOnce.Do(func() {
		debug = os.Getenv("ACRYLIC_DEBUG") == "1"
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		var w io.Writer = os.Stderr
		if debug {
			dir, _ := os.Getwd()
			if dir == "" {
				dir = os.TempDir()
			}
			logPath := filepath.Join(dir, "acrylicwindow-debug.log")
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err == nil {
				file = f
				w = io.MultiWriter(os.Stderr, f)
			}
		}
		mu.Lock()
		log = newLogger(w, level, true)
		mu.Unlock()
	})
}

func newLogger(w io.Writer, level slog.Level, source bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: source,
	}
	return slog.New(slog.NewTextHandler(w, opts)).With("category", category)
}

func current() *slog.Logger {
	initLogger()
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetOutput redirects logging to w at the given level. Tests use it to
// capture records.
func SetOutput(w io.Writer, level slog.Level) {
	initLogger()
	mu.Lock()
	log = newLogger(w, level, false)
	mu.Unlock()
}

// IsDebug returns whether debug logging is enabled (ACRYLIC_DEBUG=1).
func IsDebug() bool {
	initLogger()
	return debug
}

// Debug logs at Debug level. Keys must be string; values can be any type.
func Debug(msg string, keyvals ...any) {
	current().Debug(msg, keyvals...)
}

// Info logs at Info level.
func Info(msg string, keyvals ...any) {
	current().Info(msg, keyvals...)
}

// Warn logs at Warn level.
func Warn(msg string, keyvals ...any) {
	current().Warn(msg, keyvals...)
}

// Error logs at Error level.
func Error(msg string, keyvals ...any) {
	current().Error(msg, keyvals...)
}

// Close closes the debug log file if one was opened.
func Close() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}
