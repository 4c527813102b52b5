// Package internal contains the core infrastructure of the overlay: logging,
// time, input bindings and polling, held-key repeat, configuration, theming
// and the on-screen keyboard layout.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogPath = "logs/overlay.log"

var (
	logPath string
	logFile *os.File

	outputOnce sync.Once
	output     io.Writer = os.Stdout

	appLog      = &sink{}
	internalLog = &sink{attrs: []any{"component", "overlay"}}
)

// sink is one lazily built JSON logger with its own adjustable level.
type sink struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
	attrs  []any
}

func (s *sink) get() *slog.Logger {
	s.once.Do(func() {
		openOutput()
		l := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: &s.level}))
		if len(s.attrs) > 0 {
			l = l.With(s.attrs...)
		}
		s.logger = l
	})
	return s.logger
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. It has no effect once a
// logger has been built.
func SetLogPath(path string) {
	logPath = path
}

// openOutput tees logs to stdout and the log file. Stdout alone is used
// when the file cannot be created.
func openOutput() {
	outputOnce.Do(func() {
		path := logPath
		if path == "" {
			path = defaultLogPath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, f)
	})
}

func GetLogger() *slog.Logger         { return appLog.get() }
func GetInternalLogger() *slog.Logger { return internalLog.get() }

func SetLogLevel(level slog.Level)         { appLog.level.Set(level) }
func SetInternalLogLevel(level slog.Level) { internalLog.level.Set(level) }

// ParseLogLevel maps a level name to a slog level, defaulting to info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLogLevel(raw))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
