package arcmenu

import "github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"

// MeasureMode says how a size hint from the host constrains the menu.
type MeasureMode int

const (
	MeasureUnspecified MeasureMode = iota // Take whatever the arc needs
	MeasureAtMost                         // Take what the arc needs, capped at Size
	MeasureExactly                        // Take Size
)

// SizeHint is one axis of the space the host offers.
type SizeHint struct {
	Mode MeasureMode
	Size int32
}

func Unspecified() SizeHint       { return SizeHint{Mode: MeasureUnspecified} }
func AtMost(size int32) SizeHint  { return SizeHint{Mode: MeasureAtMost, Size: size} }
func Exactly(size int32) SizeHint { return SizeHint{Mode: MeasureExactly, Size: size} }

func (h SizeHint) resolve(needed int32) int32 {
	switch h.Mode {
	case MeasureExactly:
		return h.Size
	case MeasureAtMost:
		return min(h.Size, needed)
	default:
		return needed
	}
}

// limit is the most a child may take on this axis; 0 means unbounded.
func (h SizeHint) limit() int32 {
	if h.Mode == MeasureUnspecified {
		return 0
	}
	return h.Size
}

// Measurer is supplied by the host: it knows how big an element's icon or
// label renders. Returning a zero size falls back to Element.PreferredSize.
type Measurer interface {
	Measure(e *Element, limit geometry.Size) geometry.Size
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(e *Element, limit geometry.Size) geometry.Size

func (f MeasurerFunc) Measure(e *Element, limit geometry.Size) geometry.Size {
	return f(e, limit)
}
