// Package termhost shows an arc menu in a terminal. Cells are twice as tall
// as they are wide, so the menu is laid out in half-rows to keep the arc
// round; everything else maps one unit to one column.
package termhost

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/messages"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellAspect is how many layout units one terminal row spans.
const cellAspect = 2

// NewScreen opens the terminal with mouse reporting on. Call Fini on the
// result when done.
func NewScreen() (tcell.Screen, error) {
	if os.Getenv(constants.DebugEnvVar) != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, arcmenu.NewInfrastructureError("open_terminal", err)
	}
	if err := screen.Init(); err != nil {
		return nil, arcmenu.NewInfrastructureError("init_terminal", err)
	}
	screen.EnableMouse()
	return screen, nil
}

// Host draws one menu on a tcell screen and feeds it keys and clicks.
type Host struct {
	menu    *arcmenu.ArcMenu
	screen  tcell.Screen
	catalog *messages.Catalog
	toast   toast

	buttons  tcell.ButtonMask
	onSelect func(e *arcmenu.Element, position int)
}

// NewHost lays menu out over the whole screen. catalog localizes the
// selection toast; nil disables it.
func NewHost(menu *arcmenu.ArcMenu, screen tcell.Screen, catalog *messages.Catalog) (*Host, error) {
	h := &Host{menu: menu, screen: screen, catalog: catalog, toast: toast{now: time.Now}}
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

// Run draws frames until q or Ctrl-C is pressed, the screen is finalized
// or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(constants.DefaultFrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.menu.Update()
			h.draw()
		}
	}
}

// Measure sizes an element as its bracketed label on one row.
func (h *Host) Measure(e *arcmenu.Element, limit geometry.Size) geometry.Size {
	w := int32(runewidth.StringWidth(text(e)))
	if limit.W > 0 {
		w = min(w, limit.W)
	}
	return geometry.Size{W: w, H: cellAspect}
}

func (h *Host) relayout() error {
	cols, rows := h.screen.Size()
	w, ht := int32(cols), int32(rows*cellAspect)
	h.menu.Measure(h, arcmenu.Exactly(w), arcmenu.Exactly(ht))
	return h.menu.Layout(w, ht)
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.key(ev.Key(), ev.Rune(), ev.Modifiers())

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mouse(x, y, ev.Buttons())

	case *tcell.EventResize:
		h.screen.Sync()
		if err := h.relayout(); err != nil {
			logging.GetInternalLogger().Error("Failed to lay out arc menu", "error", err)
		}
	}
	return true
}

// key handles one key press. It returns false when the user asked to quit.
func (h *Host) key(key tcell.Key, r rune, mod tcell.ModMask) bool {
	if key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q' && mod == tcell.ModNone) {
		return false
	}

	button := keyButton(key, r)
	if button == constants.VirtualButtonUnassigned {
		return true
	}
	action := h.menu.HandleButton(button)
	logging.GetInternalLogger().Debug("Key press", "button", button.GetName(), "action", action.String())
	return true
}

// mouse clicks on the press edge of the primary button.
func (h *Host) mouse(col, row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed {
		return
	}

	x, y := int32(col), int32(row*cellAspect+cellAspect/2)
	action := h.menu.Click(x, y)
	logging.GetInternalLogger().Debug("Mouse press", "col", col, "row", row, "action", action.String())
}

func keyButton(key tcell.Key, r rune) constants.VirtualButton {
	switch key {
	case tcell.KeyUp:
		return constants.VirtualButtonUp
	case tcell.KeyDown:
		return constants.VirtualButtonDown
	case tcell.KeyLeft:
		return constants.VirtualButtonLeft
	case tcell.KeyRight:
		return constants.VirtualButtonRight
	case tcell.KeyEnter:
		return constants.VirtualButtonA
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return constants.VirtualButtonB
	case tcell.KeyTab:
		return constants.VirtualButtonSelect
	case tcell.KeyRune:
		switch r {
		case ' ':
			return constants.VirtualButtonStart
		case 'm':
			return constants.VirtualButtonMenu
		case 'k':
			return constants.VirtualButtonUp
		case 'j':
			return constants.VirtualButtonDown
		}
	}
	return constants.VirtualButtonUnassigned
}

func (h *Host) selected(e *arcmenu.Element, position int) {
	if h.catalog != nil {
		h.toast.show(h.catalog.Selected(position, e.Label), constants.DefaultToastDuration)
	}
	if h.onSelect != nil {
		h.onSelect(e, position)
	}
}
