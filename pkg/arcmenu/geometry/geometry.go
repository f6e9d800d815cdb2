package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidCount  = errors.New("geometry: item count must be at least 1")
	ErrInvalidIndex  = errors.New("geometry: item index out of range")
	ErrInvalidRadius = errors.New("geometry: radius must be positive")
	ErrInvalidCorner = errors.New("geometry: unknown corner")
)

// Offset is a distance pair in pixels.
type Offset struct {
	X float64
	Y float64
}

// Length returns the euclidean length of the offset.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Size is a measured width and height in pixels.
type Size struct {
	W int32
	H int32
}

// Point is a pixel position, origin at the container's top-left.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Contains reports whether (x, y) falls inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the rectangle's center point, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// RectAt builds a rectangle of size s with its top-left at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Angle returns the arc angle in radians of item index out of count items.
// A single item sits at angle 0.
func Angle(index, count int) float64 {
	return math.Pi / 2 * float64(index) / float64(max(count-1, 1))
}

// Position returns the distances of item index from the trigger's corner
// along the arc: X = radius*sin(angle), Y = radius*cos(angle). Both are
// non-negative; Corner decides which way they point, see ItemOrigin and
// CollapseOffset.
func Position(index, count int, radius float64, corner Corner) (Offset, error) {
	if count < 1 {
		return Offset{}, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if index < 0 || index >= count {
		return Offset{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, count)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Offset{}, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if !corner.IsValid() {
		return Offset{}, fmt.Errorf("%w: %d", ErrInvalidCorner, int(corner))
	}

	angle := Angle(index, count)
	return Offset{
		X: radius * math.Sin(angle),
		Y: radius * math.Cos(angle),
	}, nil
}

// Positions computes Position for every index in 0..count-1.
func Positions(count int, radius float64, corner Corner) ([]Offset, error) {
	if count == 0 {
		return nil, nil
	}
	offsets := make([]Offset, count)
	for i := range offsets {
		off, err := Position(i, count, radius, corner)
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}
	return offsets, nil
}

// ButtonOrigin pins a button of size button to corner of a container of
// size container, with no margin.
func ButtonOrigin(corner Corner, container, button Size) Point {
	var p Point
	if corner.IsRight() {
		p.X = container.W - button.W
	}
	if corner.IsBottom() {
		p.Y = container.H - button.H
	}
	return p
}

// ItemOrigin converts an arc offset into the top-left of an item of size
// item. Bottom anchors measure Y upward from the bottom edge and right
// anchors measure X leftward from the right edge.
func ItemOrigin(off Offset, corner Corner, container, item Size) Point {
	x, y := round32(off.X), round32(off.Y)
	if corner.IsBottom() {
		y = container.H - item.H - y
	}
	if corner.IsRight() {
		x = container.W - item.W - x
	}
	return Point{X: x, Y: y}
}

// CollapseOffset returns the translation that carries an item from its arc
// slot back onto the trigger's corner. Components are rounded the same way
// ItemOrigin rounds, so a fully collapsed item lands exactly on the corner.
func CollapseOffset(off Offset, corner Corner) Offset {
	sx, sy := corner.SignFlags()
	return Offset{
		X: float64(round32(off.X)) * sx,
		Y: float64(round32(off.Y)) * sy,
	}
}

// Bounds is the smallest container that fits the trigger and a fully open
// arc of count items no larger than item.
func Bounds(count int, radius float64, button, item Size) Size {
	if count == 0 {
		return button
	}
	r := int32(math.Ceil(radius))
	return Size{
		W: max(button.W, r+item.W),
		H: max(button.H, r+item.H),
	}
}

func round32(v float64) int32 {
	return int32(math.Round(v))
}
