package sdlhost

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/messages"
	"github.com/veandco/go-sdl2/sdl"
)

var errNotInitialized = errors.New("sdlhost: Init has not been called")

// Host owns the frame loop for one menu.
type Host struct {
	menu     *arcmenu.ArcMenu
	window   *internal.Window
	textures *internal.TextureCache
	broken   map[string]struct{}
	toast    *toast
	catalog  *messages.Catalog

	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time

	width, height int32
	onSelect      func(e *arcmenu.Element, position int)
}

// NewHost prepares menu for drawing. catalog localizes the selection
// toast; nil disables it.
func NewHost(menu *arcmenu.ArcMenu, catalog *messages.Catalog) (*Host, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, arcmenu.NewInfrastructureError("new_host", errNotInitialized)
	}

	h := &Host{
		menu:        menu,
		window:      window,
		textures:    internal.NewTextureCache(),
		broken:      make(map[string]struct{}),
		toast:       newToast(menu.Settings().Density),
		catalog:     catalog,
		directional: internal.NewDirectionalInput(),
		inputDelay:  constants.DefaultInputDelay,
	}
	menu.OnItemSelected(h.selected)

	if err := h.relayout(); err != nil {
		return nil, err
	}
	return h, nil
}

// OnItemSelected registers the application's selection callback.
func (h *Host) OnItemSelected(fn func(e *arcmenu.Element, position int)) *Host {
	h.onSelect = fn
	return h
}

// Run draws frames until the window is closed or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	defer h.textures.Destroy()
	defer h.toast.destroy()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !h.handleEvent(event) {
				return nil
			}
		}

		if dir := h.directional.Update(); dir != internal.DirectionNone {
			h.menu.HandleButton(dir.VirtualButton())
		}

		h.menu.Update()
		h.render()
		h.window.Present()
	}
}

func (h *Host) relayout() error {
	w, ht := h.window.Size()
	h.width, h.height = w, ht
	h.menu.Measure(arcmenu.MeasurerFunc(h.measure), arcmenu.Exactly(w), arcmenu.Exactly(ht))
	return h.menu.Layout(w, ht)
}

func (h *Host) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			if err := h.relayout(); err != nil {
				logging.GetInternalLogger().Error("Failed to lay out arc menu", "error", err)
			}
		}

	case *sdl.MouseButtonEvent:
		// Touches also arrive as FINGERDOWN; skip their mouse emulation.
		if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
			return true
		}
		sx, sy := h.window.PointerScale()
		h.click(int32(float64(e.X)*sx), int32(float64(e.Y)*sy))

	case *sdl.TouchFingerEvent:
		if e.Type == sdl.FINGERDOWN {
			h.click(int32(e.X*float32(h.width)), int32(e.Y*float32(h.height)))
		}

	case *sdl.UserEvent:
		if watcher != nil && watcher.IsEvent(e) {
			h.press(constants.VirtualButtonMenu)
		}

	default:
		processor := internal.GetInputProcessor()
		if processor == nil {
			return true
		}
		input := processor.ProcessSDLEvent(event)
		if input == nil {
			return true
		}
		h.directional.SetHeld(input.Button, input.Pressed)
		if input.Pressed {
			h.press(input.Button)
		}
	}
	return true
}

func (h *Host) click(x, y int32) {
	action := h.menu.Click(x, y)
	logging.GetInternalLogger().Debug("Pointer press", "x", x, "y", y, "action", action.String())
}

func (h *Host) press(button constants.VirtualButton) {
	now := h.menu.Timeline().Now()
	if now.Sub(h.lastInputTime) < h.inputDelay {
		return
	}
	h.lastInputTime = now

	action := h.menu.HandleButton(button)
	logging.GetInternalLogger().Debug("Button press", "button", button.GetName(), "action", action.String())
}

func (h *Host) selected(e *arcmenu.Element, position int) {
	if h.catalog != nil {
		h.toast.show(h.catalog.Selected(position, e.Label), constants.DefaultToastDuration)
	}
	if h.onSelect != nil {
		h.onSelect(e, position)
	}
}
