package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the menu draws into.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	logging.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logging.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.loadBackground()
	return win, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logging.GetInternalLogger().Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground() {
	path := os.Getenv(constants.BackgroundPathEnvVar)
	if path == "" {
		path = GetTheme().BackgroundImagePath
	}
	if path == "" {
		return
	}

	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		logging.GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	w.Background = texture
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size is the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// PointerScale converts window coordinates (mouse events) to drawable
// pixels; it is above 1 on high-DPI displays.
func (w *Window) PointerScale() (float64, float64) {
	ww, wh := w.Window.GetSize()
	pw, ph := w.Size()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float64(pw) / float64(ww), float64(ph) / float64(wh)
}

// Clear fills the frame with the theme background and the background
// image, if any.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()
	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{W: width, H: height})
	}
}

// Present swaps the render buffer and paces frames to ~60fps when VSync
// is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		interval := uint64(constants.DefaultFrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
