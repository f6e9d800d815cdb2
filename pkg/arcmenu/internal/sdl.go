package internal

import (
	"fmt"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitOptions configures SDL start-up.
type InitOptions struct {
	Title           string
	Window          WindowOptions
	FlipFaceButtons bool
	FontScale       float64
}

// Init starts SDL, opens the window and loads fonts for the active theme.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.GetInternalLogger().Warn("Image loaders unavailable", "error", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	InitInputProcessor(opts.FlipFaceButtons)

	winOpts := opts.Window
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		}
	}

	w, err := initWindow(opts.Title, winOpts)
	if err != nil {
		Cleanup()
		return err
	}
	window = w

	scale := opts.FontScale
	if scale <= 0 {
		scale = 1
	}
	initFonts(GetTheme().FontPath, DefaultFontSizes, scale)
	return nil
}

// Cleanup releases everything Init acquired. It is safe after a failed Init.
func Cleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
