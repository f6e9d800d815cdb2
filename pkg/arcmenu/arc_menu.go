// Package arcmenu is a radial popup menu: a trigger pinned to one corner of
// its container that, when activated, flies its items out along a quarter
// circle and reports which one was picked.
//
// The package is host-agnostic. A host (see sdlhost and termhost) measures
// elements, calls Layout when bounds change, feeds clicks and buttons in,
// calls Update once per frame and draws each element using its Rect,
// visibility and Transform. All of that happens on one goroutine.
package arcmenu

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/anim"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
)

// ArcMenu is the widget shell. Child 0 is the trigger; children 1..N are the
// items, placed on the arc in insertion order.
type ArcMenu struct {
	settings Settings
	machine  *Machine
	timeline *anim.Timeline
	choreo   *choreographer
	logger   *slog.Logger

	children []*Element
	size     geometry.Size
	collapse []geometry.Offset
	measured bool
	laidOut  bool
	focus    int

	onItemSelected func(e *Element, position int)
}

// New creates an empty, closed menu. Add the trigger first, then the items.
func New(settings Settings) (*ArcMenu, error) {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := logging.GetInternalLogger()
	machine := NewMachine()
	timeline := anim.NewTimeline(settings.Clock)

	return &ArcMenu{
		settings: settings,
		machine:  machine,
		timeline: timeline,
		choreo: &choreographer{
			settings: settings,
			timeline: timeline,
			machine:  machine,
			logger:   logger,
		},
		logger: logger,
		focus:  -1,
	}, nil
}

// AddChild appends e. The first child becomes the trigger; later children
// are items and start out matching the current state.
func (m *ArcMenu) AddChild(e *Element) *ArcMenu {
	if len(m.children) == 0 {
		e.visible = true
		e.clickable = true
		e.focusable = false
	} else {
		open := m.machine.IsOpen()
		e.visible = open
		e.setInteractive(open)
	}
	m.children = append(m.children, e)
	m.measured = false
	m.laidOut = false
	return m
}

// OnItemSelected registers the selection callback. position is 1-based;
// 0 would be the trigger and is never reported.
func (m *ArcMenu) OnItemSelected(fn func(e *Element, position int)) {
	m.onItemSelected = fn
}

func (m *ArcMenu) Settings() Settings                 { return m.settings }
func (m *ArcMenu) Status() Status                     { return m.machine.Status() }
func (m *ArcMenu) IsOpen() bool                       { return m.machine.IsOpen() }
func (m *ArcMenu) LastBatch() uint64                  { return m.machine.LatestBatch() }
func (m *ArcMenu) Timeline() *anim.Timeline           { return m.timeline }
func (m *ArcMenu) Running() int                       { return m.timeline.Running() }
func (m *ArcMenu) Size() geometry.Size                { return m.size }
func (m *ArcMenu) Children() []*Element               { return m.children }
func (m *ArcMenu) CollapseOffsets() []geometry.Offset { return m.collapse }

// Trigger returns child 0, or nil for an empty menu.
func (m *ArcMenu) Trigger() *Element {
	if len(m.children) == 0 {
		return nil
	}
	return m.children[0]
}

// Items returns children 1..N.
func (m *ArcMenu) Items() []*Element {
	if len(m.children) < 2 {
		return nil
	}
	return m.children[1:]
}

// Measure asks every child to measure itself through ms, then sizes the
// menu to fit the trigger plus a fully open arc within the hints.
func (m *ArcMenu) Measure(ms Measurer, width, height SizeHint) geometry.Size {
	limit := geometry.Size{W: width.limit(), H: height.limit()}
	for _, c := range m.children {
		c.measure(ms, limit)
	}
	m.measured = true

	var button, item geometry.Size
	if t := m.Trigger(); t != nil {
		button = t.size
	}
	for _, it := range m.Items() {
		item.W = max(item.W, it.size.W)
		item.H = max(item.H, it.size.H)
	}

	needed := geometry.Bounds(len(m.Items()), m.settings.RadiusPixels(), button, item)
	return geometry.Size{W: width.resolve(needed.W), H: height.resolve(needed.H)}
}

// Layout places the trigger and items inside a width x height container.
// It always recomputes; call it whenever the container or any measured
// size changes. A closed menu hides its items here, except those still
// animating, which hide when their own animation ends.
func (m *ArcMenu) Layout(width, height int32) error {
	if len(m.children) == 0 {
		return ErrNoTrigger
	}
	if !m.measured {
		m.Measure(nil, Exactly(width), Exactly(height))
	}

	container := geometry.Size{W: width, H: height}
	corner := m.settings.Position

	trigger := m.Trigger()
	trigger.rect = geometry.RectAt(geometry.ButtonOrigin(corner, container, trigger.size), trigger.size)

	items := m.Items()
	offsets, err := geometry.Positions(len(items), m.settings.RadiusPixels(), corner)
	if err != nil {
		return fmt.Errorf("arcmenu: layout: %w", err)
	}

	open := m.machine.IsOpen()
	collapse := make([]geometry.Offset, len(items))
	for i, item := range items {
		origin := geometry.ItemOrigin(offsets[i], corner, container, item.size)
		item.rect = geometry.RectAt(origin, item.size)
		collapse[i] = geometry.CollapseOffset(offsets[i], corner)
		if !open && len(m.timeline.RunningOn(item)) == 0 {
			item.visible = false
		}
	}

	m.size = container
	m.collapse = collapse
	m.laidOut = true

	m.logger.Debug("Laid out arc menu",
		"width", width, "height", height, "items", len(items),
		"corner", corner.String(), "radius_px", m.settings.RadiusPixels())
	return nil
}

// Toggle is the trigger's activation: spin the trigger, flip the state and
// fly every item in or out.
func (m *ArcMenu) Toggle() error {
	if !m.laidOut {
		return ErrNotLaidOut
	}

	m.choreo.spinTrigger(m.Trigger())

	tr := m.machine.Toggle()
	m.apply(tr)
	m.choreo.fly(tr, m.Items(), m.collapse)

	m.logger.Debug("Toggled arc menu",
		"from", tr.From.String(), "to", tr.To.String(), "batch", tr.Batch.ID)
	return nil
}

// Select picks the item at 1-based position, exactly as clicking it would.
func (m *ArcMenu) Select(position int) error {
	if !m.laidOut {
		return ErrNotLaidOut
	}
	items := m.Items()
	if position < 1 || position > len(items) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPosition, position, len(items))
	}
	if !items[position-1].Interactive() {
		return ErrNotInteractive
	}

	m.selectItem(position - 1)
	return nil
}

// selectItem reports the selection, plays the feedback and closes the menu
// without a fly-back, so the feedback stays on screen.
func (m *ArcMenu) selectItem(index int) {
	items := m.Items()
	chosen := items[index]

	m.logger.Debug("Selected arc menu item", "position", index+1, "element", chosen.ID, "label", chosen.Label)

	if m.onItemSelected != nil {
		m.onItemSelected(chosen, index+1)
	}

	m.choreo.feedback(items, index)

	tr := m.machine.Toggle()
	m.apply(tr)
}

// apply performs a transition's immediate side effects.
func (m *ArcMenu) apply(tr Transition) {
	for _, item := range m.Items() {
		item.setInteractive(tr.Interactive)
		if tr.ShowNow {
			item.visible = true
		}
	}
	m.focus = -1
}

// Update advances every running animation to the clock's current time and
// runs any completion callbacks that came due. Hosts call it once per frame.
func (m *ArcMenu) Update() {
	m.timeline.Advance()
}

// Click dispatches a pointer press at (x, y) in container coordinates.
// Items take precedence over the trigger; non-interactive items are
// transparent to clicks.
func (m *ArcMenu) Click(x, y int32) Action {
	if !m.laidOut {
		return ActionNone
	}

	items := m.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Interactive() && items[i].Contains(x, y) {
			m.selectItem(i)
			return ActionSelected
		}
	}

	if t := m.Trigger(); t.clickable && t.Contains(x, y) {
		if err := m.Toggle(); err != nil {
			return ActionNone
		}
		return ActionToggled
	}
	return ActionNone
}

// HandleButton dispatches controller or keyboard input. Menu, Start and
// Select toggle; B closes an open menu; directions move focus between
// open items; A selects the focused item, or toggles when nothing is
// focused.
func (m *ArcMenu) HandleButton(button constants.VirtualButton) Action {
	if !m.laidOut {
		return ActionNone
	}

	switch button {
	case constants.VirtualButtonMenu, constants.VirtualButtonStart, constants.VirtualButtonSelect:
		if m.Toggle() == nil {
			return ActionToggled
		}
	case constants.VirtualButtonB:
		if m.IsOpen() && m.Toggle() == nil {
			return ActionToggled
		}
	case constants.VirtualButtonUp, constants.VirtualButtonLeft:
		if m.moveFocus(-1) {
			return ActionFocusMoved
		}
	case constants.VirtualButtonDown, constants.VirtualButtonRight:
		if m.moveFocus(1) {
			return ActionFocusMoved
		}
	case constants.VirtualButtonA:
		if m.focus >= 0 && m.Items()[m.focus].Interactive() {
			m.selectItem(m.focus)
			return ActionSelected
		}
		if m.Toggle() == nil {
			return ActionToggled
		}
	}
	return ActionNone
}

// FocusedItem returns the focused item's 0-based index, or -1.
func (m *ArcMenu) FocusedItem() int {
	return m.focus
}

func (m *ArcMenu) moveFocus(delta int) bool {
	items := m.Items()
	n := len(items)
	if n == 0 {
		return false
	}

	start := m.focus
	if start < 0 {
		if delta > 0 {
			start = -1
		} else {
			start = n
		}
	}

	for step := 1; step <= n; step++ {
		next := ((start+delta*step)%n + n) % n
		if items[next].focusable && items[next].visible {
			if m.focus >= 0 {
				items[m.focus].focused = false
			}
			items[next].focused = true
			m.focus = next
			return true
		}
	}
	return false
}
