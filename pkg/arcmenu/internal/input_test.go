package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyboardMapping(t *testing.T) {
	p := NewInputProcessor(false)

	down := p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_RETURN}})
	require.Equal(t, &InputEvent{Button: constants.VirtualButtonA, Pressed: true, Source: InputSourceKeyboard}, down)

	up := p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_m}})
	require.Equal(t, constants.VirtualButtonMenu, up.Button)
	require.False(t, up.Pressed)

	require.Nil(t, p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_UP}}))
	require.Nil(t, p.ProcessSDLEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F1}}))
}

func TestControllerFaceButtons(t *testing.T) {
	press := func(p *InputProcessor, b sdl.GameControllerButton) constants.VirtualButton {
		ev := p.ProcessSDLEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(b), State: sdl.PRESSED})
		require.NotNil(t, ev)
		require.True(t, ev.Pressed)
		return ev.Button
	}

	swapped := NewInputProcessor(false)
	require.Equal(t, constants.VirtualButtonB, press(swapped, sdl.CONTROLLER_BUTTON_A))
	require.Equal(t, constants.VirtualButtonA, press(swapped, sdl.CONTROLLER_BUTTON_B))

	direct := NewInputProcessor(true)
	require.Equal(t, constants.VirtualButtonA, press(direct, sdl.CONTROLLER_BUTTON_A))
	require.Equal(t, constants.VirtualButtonMenu, press(direct, sdl.CONTROLLER_BUTTON_GUIDE))
	require.Equal(t, constants.VirtualButtonLeft, press(direct, sdl.CONTROLLER_BUTTON_DPAD_LEFT))
}

func TestJoyHat(t *testing.T) {
	p := NewInputProcessor(false)
	ev := p.ProcessSDLEvent(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION, Value: sdl.HAT_UP})
	require.Equal(t, constants.VirtualButtonUp, ev.Button)
	require.True(t, ev.Pressed)

	ev = p.ProcessSDLEvent(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION, Value: sdl.HAT_CENTERED})
	require.False(t, ev.Pressed)
}

func TestHardwareButtonAccept(t *testing.T) {
	now := time.Unix(0, 0)
	w := newHardwareButtonWatcher(HardwareButtonConfig{ButtonCode: 316, CoolDown: time.Second}, 0x8000, func() time.Time { return now })

	press := &evdev.InputEvent{Type: evdev.EV_KEY, Code: 316, Value: 1}
	require.True(t, w.accept(press))

	now = now.Add(500 * time.Millisecond)
	require.False(t, w.accept(press), "inside the cool-down")

	now = now.Add(time.Second)
	require.False(t, w.accept(&evdev.InputEvent{Type: evdev.EV_KEY, Code: 316, Value: 0}), "release")
	require.False(t, w.accept(&evdev.InputEvent{Type: evdev.EV_KEY, Code: 115, Value: 1}), "other key")
	require.False(t, w.accept(&evdev.InputEvent{Type: evdev.EV_ABS, Code: 316, Value: 1}))
	require.True(t, w.accept(press))

	require.True(t, w.IsEvent(&sdl.UserEvent{Type: 0x8000}))
	require.False(t, w.IsEvent(&sdl.UserEvent{Type: 0x8001}))
	require.False(t, w.IsEvent(&sdl.QuitEvent{}))
}
