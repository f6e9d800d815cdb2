package termhost

import (
	"log/slog"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
)

// SetLogPath sends logs to path and nowhere else, since stdout belongs to
// the screen. An empty path discards them. Call it before anything logs.
func SetLogPath(path string) {
	logging.SetConsole(false)
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// Close flushes and closes the log file.
func Close() {
	logging.Close()
}
