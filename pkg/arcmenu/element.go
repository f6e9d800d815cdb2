package arcmenu

import (
	"math"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/anim"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/google/uuid"
)

// Element is one child of an ArcMenu: the trigger (child 0) or an item.
// Hosts read its rect, flags and transform to draw it; only the menu
// changes them.
type Element struct {
	ID    uuid.UUID
	Label string // Text drawn when there is no icon, and used in toasts
	Icon  string // Path to an SVG or PNG icon; empty for a text element
	Tag   any    // Application data handed back on selection

	// PreferredSize is used when the host measurer has no opinion.
	PreferredSize geometry.Size

	size      geometry.Size
	rect      geometry.Rect
	visible   bool
	clickable bool
	focusable bool
	focused   bool
	transform anim.Transform
}

// NewElement returns a visible element with an identity transform.
func NewElement(label string) *Element {
	return &Element{
		ID:        uuid.New(),
		Label:     label,
		visible:   true,
		transform: anim.Identity(),
	}
}

func (e *Element) WithIcon(path string) *Element {
	e.Icon = path
	return e
}

func (e *Element) WithTag(tag any) *Element {
	e.Tag = tag
	return e
}

func (e *Element) WithSize(w, h int32) *Element {
	e.PreferredSize = geometry.Size{W: w, H: h}
	return e
}

func (e *Element) Size() geometry.Size       { return e.size }
func (e *Element) Rect() geometry.Rect       { return e.rect }
func (e *Element) Visible() bool             { return e.visible }
func (e *Element) Clickable() bool           { return e.clickable }
func (e *Element) Focusable() bool           { return e.focusable }
func (e *Element) Focused() bool             { return e.focused }
func (e *Element) Transform() anim.Transform { return e.transform }

// SetTransform implements anim.Target.
func (e *Element) SetTransform(t anim.Transform) {
	e.transform = t
}

// Interactive reports whether the element accepts clicks right now.
func (e *Element) Interactive() bool {
	return e.visible && e.clickable
}

func (e *Element) setInteractive(on bool) {
	e.clickable = on
	e.focusable = on
	if !on {
		e.focused = false
	}
}

// VisualRect is the laid-out rect after the current translation and scale,
// i.e. where the element is drawn this frame. Rotation is ignored; it
// spins the element about its own center. Hit testing does not follow it.
func (e *Element) VisualRect() geometry.Rect {
	t := e.transform
	w := float64(e.rect.W) * t.ScaleX
	h := float64(e.rect.H) * t.ScaleY
	cx := float64(e.rect.X) + float64(e.rect.W)/2 + t.DX
	cy := float64(e.rect.Y) + float64(e.rect.H)/2 + t.DY
	return geometry.Rect{
		X: int32(math.Round(cx - w/2)),
		Y: int32(math.Round(cy - h/2)),
		W: int32(math.Round(w)),
		H: int32(math.Round(h)),
	}
}

// Contains hit-tests against the laid-out rect. Animations move what is
// drawn, not where the element takes clicks, so an item flying out over the
// trigger does not shadow it.
func (e *Element) Contains(x, y int32) bool {
	return e.rect.Contains(x, y)
}

func (e *Element) measure(m Measurer, limit geometry.Size) {
	var s geometry.Size
	if m != nil {
		s = m.Measure(e, limit)
	}
	if s.W <= 0 || s.H <= 0 {
		s = e.PreferredSize
	}
	e.size = s
}
