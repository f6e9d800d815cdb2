// Package sdlhost shows an arc menu in an SDL2 window. It measures and
// draws the menu's elements, feeds mouse, touch, keyboard, controller and
// raw hardware button input into it, and shows a toast for each selection.
package sdlhost

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/platform/cannoli"
)

// WindowOptions are the SDL window flags and size.
type WindowOptions = internal.WindowOptions

// Options configures SDL start-up.
type Options struct {
	WindowTitle     string              // Window title displayed in windowed mode
	WindowOptions   WindowOptions       // SDL window flags (borderless, resizable, etc.)
	Theme           arcmenu.ThemeConfig // Color and font overrides; zero fields keep the defaults
	IsCannoli       bool                // Use the Cannoli theme and its menu button
	HardwareButton  arcmenu.HardwareButton
	FlipFaceButtons bool    // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	Density         float64 // Scales fonts; use the menu's density
	LogPath         string  // Full path for log file including filename (creates parent directories)
}

var watcher *internal.HardwareButtonWatcher

// Init starts SDL and opens the window. Call it before NewHost and pair it
// with Close.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.GetTheme()
	hw := options.HardwareButton
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme(options.Theme.Font)
		if hw.Device == "" {
			hw = arcmenu.HardwareButton{Device: "/dev/input/event1", Code: cannoli.MenuButtonCode}
		}
	}
	internal.SetTheme(theme.Apply(internal.ThemeOverrides{
		Accent:          options.Theme.Accent,
		Item:            options.Theme.Item,
		Label:           options.Theme.Label,
		ToastBackground: options.Theme.ToastBackground,
		ToastText:       options.Theme.ToastText,
		Background:      options.Theme.Background,
		FontPath:        options.Theme.Font,
	}))

	err := internal.Init(internal.InitOptions{
		Title:           options.WindowTitle,
		Window:          options.WindowOptions,
		FlipFaceButtons: options.FlipFaceButtons,
		FontScale:       options.Density,
	})
	if err != nil {
		return arcmenu.NewInfrastructureError("init_sdl", err)
	}

	if hw.Device != "" && !constants.IsDevMode() {
		w, err := internal.StartHardwareButton(internal.HardwareButtonConfig{
			DevicePath: hw.Device,
			ButtonCode: hw.Code,
			CoolDown:   250 * time.Millisecond,
		})
		if err != nil {
			// The menu still works from the other inputs.
			logging.GetInternalLogger().Error("Hardware button unavailable", "error", err)
		} else {
			watcher = w
		}
	}
	return nil
}

// Close releases all SDL resources. Call it before the program exits.
func Close() {
	if watcher != nil {
		watcher.Stop()
		watcher = nil
	}
	internal.Cleanup()
	logging.Close()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}
