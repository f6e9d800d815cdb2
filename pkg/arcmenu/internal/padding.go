package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// SymmetricPadding uses vertical for top and bottom, horizontal for the sides.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (p Padding) Horizontal() int32 { return p.Left + p.Right }
func (p Padding) Vertical() int32   { return p.Top + p.Bottom }

// Scale multiplies every side by f, e.g. a display density.
func (p Padding) Scale(f float64) Padding {
	s := func(v int32) int32 { return int32(float64(v) * f) }
	return Padding{Top: s(p.Top), Right: s(p.Right), Bottom: s(p.Bottom), Left: s(p.Left)}
}
