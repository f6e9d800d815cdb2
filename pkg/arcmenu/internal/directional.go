package internal

import (
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
)

// Direction is a held d-pad or arrow direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput turns a held direction into repeated focus moves: the
// first repeat after repeatDelay, then one every repeatInterval.
type DirectionalInput struct {
	held           [DirectionRight + 1]bool
	now            func() time.Time
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput uses a 300ms delay and a 50ms interval.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond, time.Now)
}

// NewDirectionalInputWithTiming uses custom timing and clock; a nil clock
// means time.Now.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) DirectionalInput {
	if now == nil {
		now = time.Now
	}
	return DirectionalInput{
		now:            now,
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
	}
}

// SetHeld records a press or release. It reports whether button is a
// direction at all.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}
	d.held[dir] = held
	if held {
		d.lastRepeatTime = d.now()
	} else {
		d.hasRepeated = false
	}
	return true
}

func (d *DirectionalInput) IsHeld() bool {
	return d.HeldDirection() != DirectionNone
}

// HeldDirection returns the held direction, preferring up, down, left,
// right in that order.
func (d *DirectionalInput) HeldDirection() Direction {
	for dir := DirectionUp; dir <= DirectionRight; dir++ {
		if d.held[dir] {
			return dir
		}
	}
	return DirectionNone
}

// Update is called once per frame and returns the direction to repeat, or
// DirectionNone.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}
	return DirectionNone
}

// Reset releases every direction.
func (d *DirectionalInput) Reset() {
	d.held = [DirectionRight + 1]bool{}
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// DirectionFor maps a virtual button to its direction.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
