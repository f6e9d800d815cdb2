// Package geometry places an arc menu's trigger and items.
//
// Everything here is a pure function of its arguments. Callers recompute on
// every layout pass; nothing is cached between measurement passes.
package geometry

import (
	"fmt"
	"strings"
)

// Corner is the container corner the trigger is pinned to. The arc opens
// into the container from that corner.
type Corner int

const (
	CornerUnspecified Corner = iota // Resolved to CornerBottomLeft by settings
	CornerTopLeft
	CornerBottomLeft
	CornerTopRight
	CornerBottomRight
)

// DefaultCorner is used when no corner is configured.
const DefaultCorner = CornerBottomLeft

// IsValid reports whether c names one of the four corners.
func (c Corner) IsValid() bool {
	return c >= CornerTopLeft && c <= CornerBottomRight
}

func (c Corner) IsTop() bool {
	return c == CornerTopLeft || c == CornerTopRight
}

func (c Corner) IsBottom() bool {
	return c == CornerBottomLeft || c == CornerBottomRight
}

func (c Corner) IsLeft() bool {
	return c == CornerTopLeft || c == CornerBottomLeft
}

func (c Corner) IsRight() bool {
	return c == CornerTopRight || c == CornerBottomRight
}

// String returns the config spelling of the corner.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top_left"
	case CornerBottomLeft:
		return "bottom_left"
	case CornerTopRight:
		return "top_right"
	case CornerBottomRight:
		return "bottom_right"
	default:
		return "unspecified"
	}
}

// ParseCorner accepts "bottom_left", "bottom-left", "left_bottom" and the
// like, case-insensitively.
func ParseCorner(s string) (Corner, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch norm {
	case "top_left", "left_top":
		return CornerTopLeft, nil
	case "bottom_left", "left_bottom":
		return CornerBottomLeft, nil
	case "top_right", "right_top":
		return CornerTopRight, nil
	case "bottom_right", "right_bottom":
		return CornerBottomRight, nil
	case "", "unspecified":
		return CornerUnspecified, nil
	}
	return CornerUnspecified, fmt.Errorf("%w: %q", ErrInvalidCorner, s)
}

func (c Corner) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Corner) UnmarshalText(text []byte) error {
	parsed, err := ParseCorner(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SignFlags returns the direction multipliers that carry an item from its
// arc slot back to the trigger's corner. Left anchors pull items left
// (-1), right anchors push them right (+1); top anchors pull items up (-1),
// bottom anchors push them down (+1).
func (c Corner) SignFlags() (x, y float64) {
	x, y = -1, 1
	if c.IsRight() {
		x = 1
	}
	if c.IsTop() {
		y = -1
	}
	return x, y
}
