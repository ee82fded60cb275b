// Package logger provides the process-wide structured logger for wallrotate.
// When WALLROTATE_DEBUG=1, logs at Debug level are written to stderr and to
// debug.log under the user cache directory.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	debug    bool
	log      *slog.Logger
	level    = new(slog.LevelVar)
	file     *os.File
	initOnce sync.Once
)

func initLogger() {
	initOnce.Do(func() {
		debug = os.Getenv("WALLROTATE_DEBUG") == "1"
		if debug {
			level.Set(slog.LevelDebug)
		}

		opts := &slog.HandlerOptions{
			Level:     level,
			AddSource: debug,
		}

		var w io.Writer = os.Stderr
		if debug {
			if f, err := openDebugFile(); err == nil {
				file = f
				w = io.MultiWriter(os.Stderr, f)
			}
		}
		log = slog.New(slog.NewTextHandler(w, opts))
	})
}

func openDebugFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "wallrotate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Configure sets the minimum level from the configured name. WALLROTATE_DEBUG
// wins over it.
func Configure(levelName string) {
	initLogger()
	if debug {
		return
	}
	level.Set(ParseLevel(levelName))
}

// IsDebug returns whether debug logging is enabled (WALLROTATE_DEBUG=1).
func IsDebug() bool {
	initLogger()
	return debug
}

// Debug logs at Debug level. Keys must be string; values can be any type.
func Debug(msg string, keyvals ...any) {
	initLogger()
	log.Debug(msg, keyvals...)
}

// Info logs at Info level.
func Info(msg string, keyvals ...any) {
	initLogger()
	log.Info(msg, keyvals...)
}

// Warn logs at Warn level.
func Warn(msg string, keyvals ...any) {
	initLogger()
	log.Warn(msg, keyvals...)
}

// Error logs at Error level.
func Error(msg string, keyvals ...any) {
	initLogger()
	log.Error(msg, keyvals...)
}

// Close closes the debug log file if one was opened.
func Close() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}
