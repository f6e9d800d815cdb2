package anim

import "time"

// Target is anything an animation can drive.
type Target interface {
	SetTransform(Transform)
}

// Clock supplies the current time. Hosts use time.Now; tests step a fake.
type Clock func() time.Time

type run struct {
	target Target
	anim   *Animation
	start  time.Time
	done   bool
}

// Timeline owns every running animation. It is not safe for concurrent
// use: start, advance and every listener callback belong to one goroutine.
//
// Starting an animation on a target makes it that target's current
// animation. An older animation on the same target keeps running and keeps
// firing its callbacks, but no longer moves the target.
type Timeline struct {
	clock   Clock
	runs    []*run
	current map[Target]*run
}

// NewTimeline returns an empty timeline. A nil clock means time.Now.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		clock = time.Now
	}
	return &Timeline{
		clock:   clock,
		current: make(map[Target]*run),
	}
}

// Now returns the timeline's idea of the current time.
func (tl *Timeline) Now() time.Time {
	return tl.clock()
}

// Start begins a on target at the current time. The target receives the
// animation's first frame immediately; listeners fire from Advance.
func (tl *Timeline) Start(target Target, a *Animation) {
	a.reset()
	r := &run{target: target, anim: a, start: tl.clock()}
	tl.runs = append(tl.runs, r)
	tl.current[target] = r
	target.SetTransform(r.transform(0))
}

// Advance moves every running animation to the current time, updates the
// targets they still own, then fires due callbacks in start order.
// Callbacks may start new animations; those are first advanced on the
// next call.
func (tl *Timeline) Advance() {
	now := tl.clock()
	runs := tl.runs
	var due []func()

	for _, r := range runs {
		elapsed := now.Sub(r.start)
		if tl.current[r.target] == r {
			r.target.SetTransform(r.transform(elapsed))
		}
		due, r.done = r.anim.dispatch(elapsed, due)
	}

	kept := tl.runs[:0]
	for _, r := range tl.runs {
		if !r.done {
			kept = append(kept, r)
			continue
		}
		if tl.current[r.target] == r {
			delete(tl.current, r.target)
		}
	}
	for i := len(kept); i < len(tl.runs); i++ {
		tl.runs[i] = nil
	}
	tl.runs = kept

	for _, fn := range due {
		fn()
	}
}

// Running returns the number of animations that have not finished.
func (tl *Timeline) Running() int {
	return len(tl.runs)
}

// RunningOn returns the unfinished animations started on target, oldest first.
func (tl *Timeline) RunningOn(target Target) []*Animation {
	var out []*Animation
	for _, r := range tl.runs {
		if r.target == target {
			out = append(out, r.anim)
		}
	}
	return out
}

// Current returns the animation that currently drives target, or nil.
func (tl *Timeline) Current(target Target) *Animation {
	if r, ok := tl.current[target]; ok {
		return r.anim
	}
	return nil
}

// Settle advances in steps of frame until nothing is running or limit has
// elapsed on the clock. It is meant for fake clocks; step moves the clock.
func (tl *Timeline) Settle(step func(time.Duration), frame, limit time.Duration) {
	for elapsed := time.Duration(0); tl.Running() > 0 && elapsed <= limit; elapsed += frame {
		step(frame)
		tl.Advance()
	}
}

func (r *run) transform(elapsed time.Duration) Transform {
	t := Identity()
	r.anim.Transformation(elapsed, &t)
	return t
}
