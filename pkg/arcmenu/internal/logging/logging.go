// Package logging holds the structured loggers shared by the widget core and
// its hosts. It has no SDL dependency so headless code and tests can log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string
	output  io.Writer

	console = true

	setupOnce sync.Once

	appOnce  sync.Once
	appLog   *slog.Logger
	appLevel *slog.LevelVar

	libOnce  sync.Once
	libLog   *slog.Logger
	libLevel *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Without a path, logs go to
// stdout only.
func SetLogPath(path string) {
	logPath = path
}

// SetConsole turns stdout logging on or off. Call before the first logger
// is created; full-screen terminal hosts turn it off.
func SetConsole(enabled bool) {
	console = enabled
}

func setup() {
	setupOnce.Do(func() {
		output = os.Stdout
		if !console {
			output = io.Discard
		}
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, keep the default output
			return
		}
		logFile = f
		if console {
			output = io.MultiWriter(os.Stdout, logFile)
		} else {
			output = logFile
		}
	})
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	appOnce.Do(func() {
		appLevel = &slog.LevelVar{}
		appLog = newLogger(appLevel)
	})
	return appLog
}

// GetInternalLogger returns the logger the widget and hosts write to.
// It defaults to Error so library chatter stays out of application logs.
func GetInternalLogger() *slog.Logger {
	libOnce.Do(func() {
		libLevel = &slog.LevelVar{}
		libLevel.Set(slog.LevelError)
		libLog = newLogger(libLevel)
	})
	return libLog
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	appLevel.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	libLevel.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is Info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
	SetLogLevel(ParseLevel(raw))
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
