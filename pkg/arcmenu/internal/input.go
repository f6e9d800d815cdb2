package internal

import (
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

type InputSource int

const (
	InputSourceKeyboard InputSource = iota
	InputSourceController
	InputSourceJoystick
)

// InputEvent is a press or release of a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  InputSource
}

// InputProcessor turns keyboard, game controller and joystick hat events
// into virtual buttons.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
}

var processor *InputProcessor

// InitInputProcessor opens every attached game controller. With flip unset
// the controller's A and B are swapped, Nintendo style.
func InitInputProcessor(flip bool) {
	processor = NewInputProcessor(flip)
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			processor.openController(i)
		}
	}
}

func NewInputProcessor(flip bool) *InputProcessor {
	return &InputProcessor{
		flipFaceButtons: flip,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent returns nil for events that are not button input,
// including key auto-repeat and controller hot-plugging.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button := keyButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: InputSourceKeyboard}

	case *sdl.ControllerButtonEvent:
		button := p.controllerButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: InputSourceController}

	case *sdl.JoyHatEvent:
		button := hatButton(e.Value)
		return &InputEvent{Button: button, Pressed: button != constants.VirtualButtonUnassigned, Source: InputSourceJoystick}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(e.Which)
		}
	}
	return nil
}

func keyButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER, sdl.K_x:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_z:
		return constants.VirtualButtonB
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m, sdl.K_MENU:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (p *InputProcessor) controllerButton(b sdl.GameControllerButton) constants.VirtualButton {
	a, back := constants.VirtualButtonB, constants.VirtualButtonA
	if p.flipFaceButtons {
		a, back = constants.VirtualButtonA, constants.VirtualButtonB
	}

	switch b {
	case sdl.CONTROLLER_BUTTON_A:
		return a
	case sdl.CONTROLLER_BUTTON_B:
		return back
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func hatButton(value uint8) constants.VirtualButton {
	switch value {
	case sdl.HAT_UP:
		return constants.VirtualButtonUp
	case sdl.HAT_DOWN:
		return constants.VirtualButtonDown
	case sdl.HAT_LEFT:
		return constants.VirtualButtonLeft
	case sdl.HAT_RIGHT:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (p *InputProcessor) openController(index int) {
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		logging.GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	p.controllers[id] = gc
	logging.GetInternalLogger().Debug("Opened game controller", "name", gc.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if gc, ok := p.controllers[id]; ok {
		gc.Close()
		delete(p.controllers, id)
	}
}

// CloseAllControllers closes every controller the processor opened.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id := range processor.controllers {
		processor.closeController(id)
	}
}
