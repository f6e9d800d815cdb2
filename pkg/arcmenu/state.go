package arcmenu

import "go.uber.org/atomic"

// Status is the menu's logical state.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

func (s Status) String() string {
	if s == StatusOpen {
		return "open"
	}
	return "closed"
}

// Direction is the way a batch of animations moves the items.
type Direction int

const (
	DirectionOpening Direction = iota
	DirectionClosing
)

func (d Direction) String() string {
	if d == DirectionClosing {
		return "closing"
	}
	return "opening"
}

// Batch identifies the animations started by one toggle. Completion
// callbacks carry the batch they belong to so they can tell whether a newer
// toggle has happened since.
type Batch struct {
	ID        uint64
	Direction Direction
}

// Transition is the decision taken by one toggle.
type Transition struct {
	From  Status
	To    Status
	Batch Batch

	// Interactive is applied to every item's clickable and focusable flags
	// as soon as the transition is taken.
	Interactive bool

	// ShowNow makes every item visible before its animation starts. Closing
	// leaves visibility to each item's own completion callback.
	ShowNow bool
}

// Machine holds the open/closed state. Toggle flips it unconditionally; a
// toggle taken while a previous batch is still animating simply starts
// another batch.
//
// Toggle belongs to the UI goroutine. Status and IsOpen may be read from
// anywhere, which lets background input watchers check the menu.
type Machine struct {
	open   atomic.Bool
	latest atomic.Uint64
}

// NewMachine returns a closed machine.
func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) Status() Status {
	if m.open.Load() {
		return StatusOpen
	}
	return StatusClosed
}

func (m *Machine) IsOpen() bool {
	return m.open.Load()
}

// Toggle flips the state and returns what the flip means for the items.
func (m *Machine) Toggle() Transition {
	from := m.Status()
	id := m.latest.Inc()

	if from == StatusClosed {
		m.open.Store(true)
		return Transition{
			From:        StatusClosed,
			To:          StatusOpen,
			Batch:       Batch{ID: id, Direction: DirectionOpening},
			Interactive: true,
			ShowNow:     true,
		}
	}

	m.open.Store(false)
	return Transition{
		From:        StatusOpen,
		To:          StatusClosed,
		Batch:       Batch{ID: id, Direction: DirectionClosing},
		Interactive: false,
		ShowNow:     false,
	}
}

// LatestBatch returns the id of the most recent batch, 0 before any toggle.
func (m *Machine) LatestBatch() uint64 {
	return m.latest.Load()
}

// IsLatest reports whether no toggle has happened since b was issued.
func (m *Machine) IsLatest(b Batch) bool {
	return b.ID == m.latest.Load()
}
