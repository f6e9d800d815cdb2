// Package anim provides the animation primitives the arc menu is choreographed
// with: translate, rotate, scale and fade effects, animations with a
// duration, start delay, fill-after flag and start/end/repeat listener, sets
// that run animations concurrently, and a Timeline that advances everything
// once per frame on the caller's goroutine.
package anim

import "math"

// Transform is the visual state an animation imposes on a target. Rotation
// and scale pivot around the target's center.
type Transform struct {
	DX       float64 // Horizontal translation in pixels
	DY       float64 // Vertical translation in pixels
	Rotation float64 // Clockwise rotation in degrees
	ScaleX   float64
	ScaleY   float64
	Alpha    float64 // 0 transparent, 1 opaque
}

// Identity returns the transform that leaves a target untouched.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// IsIdentity reports whether t leaves a target untouched.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// NormalizedRotation returns Rotation folded into [0, 360).
func (t Transform) NormalizedRotation() float64 {
	r := math.Mod(t.Rotation, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// Effect contributes to a Transform at a given eased progress in [0, 1].
// Effects compose: translations and rotations add, scales and alpha multiply.
type Effect interface {
	Apply(progress float64, t *Transform)
}

type Translate struct {
	FromX, ToX float64
	FromY, ToY float64
}

func (e Translate) Apply(p float64, t *Transform) {
	t.DX += lerp(e.FromX, e.ToX, p)
	t.DY += lerp(e.FromY, e.ToY, p)
}

type Rotate struct {
	From, To float64
}

func (e Rotate) Apply(p float64, t *Transform) {
	t.Rotation += lerp(e.From, e.To, p)
}

type Scale struct {
	FromX, ToX float64
	FromY, ToY float64
}

// Uniform scales both axes from from to to.
func Uniform(from, to float64) Scale {
	return Scale{FromX: from, ToX: to, FromY: from, ToY: to}
}

func (e Scale) Apply(p float64, t *Transform) {
	t.ScaleX *= lerp(e.FromX, e.ToX, p)
	t.ScaleY *= lerp(e.FromY, e.ToY, p)
}

type Fade struct {
	From, To float64
}

func (e Fade) Apply(p float64, t *Transform) {
	t.Alpha *= lerp(e.From, e.To, p)
}

func lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// Linear leaves progress unchanged.
func Linear(p float64) float64 {
	return p
}

// AccelerateDecelerate starts and ends slowly. It is the default easing.
func AccelerateDecelerate(p float64) float64 {
	return math.Cos((p+1)*math.Pi)/2 + 0.5
}

// Decelerate starts fast and settles.
func Decelerate(p float64) float64 {
	return 1 - (1-p)*(1-p)
}
