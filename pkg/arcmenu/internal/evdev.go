package internal

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// HardwareButtonConfig binds one key of a Linux input device, such as a
// handheld's dedicated menu button that SDL does not see, to the trigger.
type HardwareButtonConfig struct {
	DevicePath string        // e.g. /dev/input/event1
	ButtonCode uint16        // Linux key code
	CoolDown   time.Duration // Presses closer together than this are ignored
}

// HardwareButtonWatcher reads the device on its own goroutine and pushes
// an SDL user event for each press, so the press is handled on the UI
// goroutine like any other input.
type HardwareButtonWatcher struct {
	config    HardwareButtonConfig
	eventType uint32
	device    *evdev.InputDevice
	running   atomic.Bool
	wg        sync.WaitGroup
	now       func() time.Time
	lastPress time.Time
}

// StartHardwareButton opens the device and starts watching it.
func StartHardwareButton(config HardwareButtonConfig) (*HardwareButtonWatcher, error) {
	eventType := sdl.RegisterEvents(1)
	if eventType == math.MaxUint32 {
		return nil, fmt.Errorf("hardware button: no SDL user events left")
	}

	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("hardware button: open %s: %w", config.DevicePath, err)
	}

	w := newHardwareButtonWatcher(config, eventType, time.Now)
	w.device = device
	w.running.Store(true)

	name, _ := device.Name()
	logging.GetInternalLogger().Debug("Watching hardware button",
		"device", config.DevicePath, "name", name, "code", config.ButtonCode)

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func newHardwareButtonWatcher(config HardwareButtonConfig, eventType uint32, now func() time.Time) *HardwareButtonWatcher {
	return &HardwareButtonWatcher{config: config, eventType: eventType, now: now}
}

// IsEvent reports whether e is a press pushed by this watcher.
func (w *HardwareButtonWatcher) IsEvent(e sdl.Event) bool {
	u, ok := e.(*sdl.UserEvent)
	return ok && u.Type == w.eventType
}

func (w *HardwareButtonWatcher) loop() {
	defer w.wg.Done()

	for w.running.Load() {
		ev, err := w.device.ReadOne()
		if err != nil {
			if w.running.Load() {
				logging.GetInternalLogger().Error("Hardware button read failed", "device", w.config.DevicePath, "error", err)
			}
			return
		}
		if !w.accept(ev) {
			continue
		}
		if _, err := sdl.PushEvent(&sdl.UserEvent{Type: w.eventType, Code: int32(w.config.ButtonCode)}); err != nil {
			logging.GetInternalLogger().Warn("Failed to queue hardware button press", "error", err)
		}
	}
}

// accept reports whether ev is a fresh press of the configured key.
func (w *HardwareButtonWatcher) accept(ev *evdev.InputEvent) bool {
	if ev.Type != evdev.EV_KEY || uint16(ev.Code) != w.config.ButtonCode || ev.Value != 1 {
		return false
	}
	now := w.now()
	if !w.lastPress.IsZero() && now.Sub(w.lastPress) < w.config.CoolDown {
		return false
	}
	w.lastPress = now
	return true
}

// Stop closes the device and waits for the reader to exit.
func (w *HardwareButtonWatcher) Stop() {
	if !w.running.CompareAndSwap(true, false) {
		return
	}
	if err := w.device.Close(); err != nil {
		logging.GetInternalLogger().Warn("Failed to close hardware button device", "error", err)
	}
	w.wg.Wait()
}
