package anim

import "time"

// Listener receives lifecycle callbacks for one animation. Any field may be
// nil. Callbacks run on the goroutine that calls Timeline.Advance.
type Listener struct {
	OnStart  func()
	OnEnd    func()
	OnRepeat func()
}

// Animation is either a single effect or a set of child animations that run
// concurrently. Configure it with the With* methods before starting it; an
// Animation keeps its own run state and is meant to be started once.
type Animation struct {
	name      string
	effect    Effect
	children  []*Animation
	duration  time.Duration
	delay     time.Duration
	repeat    int
	fillAfter bool
	easing    Easing
	listener  Listener

	started bool
	ended   bool
	cycles  int
}

// New returns an animation that plays effect.
func New(effect Effect) *Animation {
	return &Animation{effect: effect, easing: AccelerateDecelerate}
}

// NewSet returns an animation that plays children concurrently. Each child
// keeps its own delay, measured from the set's start.
func NewSet(children ...*Animation) *Animation {
	return &Animation{children: children, easing: AccelerateDecelerate}
}

// WithName labels the animation for logs and tests.
func (a *Animation) WithName(name string) *Animation {
	a.name = name
	return a
}

// WithDuration sets how long one cycle takes. On a set it also overrides
// every child's duration.
func (a *Animation) WithDuration(d time.Duration) *Animation {
	a.duration = d
	for _, c := range a.children {
		c.WithDuration(d)
	}
	return a
}

// WithDelay postpones the start by d from the moment the animation is started.
func (a *Animation) WithDelay(d time.Duration) *Animation {
	a.delay = d
	return a
}

// WithRepeat plays the animation n extra times. OnRepeat fires between cycles.
func (a *Animation) WithRepeat(n int) *Animation {
	a.repeat = max(n, 0)
	return a
}

// WithFillAfter keeps the final frame applied after the animation ends
// instead of snapping back. On a set it applies to every child.
func (a *Animation) WithFillAfter(fill bool) *Animation {
	a.fillAfter = fill
	return a
}

// WithEasing replaces the default AccelerateDecelerate easing. On a set it
// applies to every child.
func (a *Animation) WithEasing(e Easing) *Animation {
	a.easing = e
	for _, c := range a.children {
		c.WithEasing(e)
	}
	return a
}

// WithListener registers lifecycle callbacks.
func (a *Animation) WithListener(l Listener) *Animation {
	a.listener = l
	return a
}

func (a *Animation) Name() string            { return a.name }
func (a *Animation) Effect() Effect          { return a.effect }
func (a *Animation) Children() []*Animation  { return a.children }
func (a *Animation) Duration() time.Duration { return a.duration }
func (a *Animation) Delay() time.Duration    { return a.delay }
func (a *Animation) FillAfter() bool         { return a.fillAfter }
func (a *Animation) Started() bool           { return a.started }
func (a *Animation) Ended() bool             { return a.ended }

// End is the time, measured from the start call, at which the animation
// and all of its children have finished.
func (a *Animation) End() time.Duration {
	if len(a.children) == 0 {
		return a.delay + a.duration*time.Duration(a.repeat+1)
	}
	var latest time.Duration
	for _, c := range a.children {
		latest = max(latest, c.End())
	}
	return a.delay + latest
}

// Find returns the first animation in the tree named name, or nil.
func (a *Animation) Find(name string) *Animation {
	if a.name == name {
		return a
	}
	for _, c := range a.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Transformation composes the animation's contribution at elapsed (time
// since it was started) into t. Before its delay a leaf shows its first
// frame; after it ends it shows its last frame when fill-after is set
// (on itself or an ancestor) and nothing otherwise.
func (a *Animation) Transformation(elapsed time.Duration, t *Transform) {
	a.transform(elapsed, false, t)
}

func (a *Animation) transform(elapsed time.Duration, inheritedFill bool, t *Transform) {
	local := elapsed - a.delay
	fill := inheritedFill || a.fillAfter

	if len(a.children) > 0 {
		for _, c := range a.children {
			c.transform(local, fill, t)
		}
		return
	}
	if a.effect == nil {
		return
	}

	switch p, state := a.progress(local); state {
	case phasePending, phaseRunning:
		a.effect.Apply(a.ease(p), t)
	case phaseDone:
		if fill {
			a.effect.Apply(a.ease(1), t)
		}
	}
}

type phase int

const (
	phasePending phase = iota
	phaseRunning
	phaseDone
)

// progress returns the linear progress of the current cycle at local time.
func (a *Animation) progress(local time.Duration) (float64, phase) {
	if local < 0 {
		return 0, phasePending
	}
	total := a.duration * time.Duration(a.repeat+1)
	if local >= total {
		return 1, phaseDone
	}
	if a.duration <= 0 {
		return 1, phaseRunning
	}
	return float64(local%a.duration) / float64(a.duration), phaseRunning
}

func (a *Animation) ease(p float64) float64 {
	if a.easing == nil {
		return p
	}
	return a.easing(p)
}

func (a *Animation) reset() {
	a.started, a.ended, a.cycles = false, false, 0
	for _, c := range a.children {
		c.reset()
	}
}

// dispatch fires the callbacks due at elapsed and reports whether the whole
// tree has ended. Callbacks are appended to due instead of being invoked so
// the timeline can run them after every transform for the frame is set.
func (a *Animation) dispatch(elapsed time.Duration, due []func()) ([]func(), bool) {
	local := elapsed - a.delay

	if !a.started && local >= 0 {
		a.started = true
		if a.listener.OnStart != nil {
			due = append(due, a.listener.OnStart)
		}
	}

	done := true
	if len(a.children) > 0 {
		for _, c := range a.children {
			var childDone bool
			due, childDone = c.dispatch(local, due)
			done = done && childDone
		}
	} else {
		_, state := a.progress(local)
		done = state == phaseDone
		if a.started && a.duration > 0 && a.repeat > 0 {
			cycles := min(int(local/a.duration), a.repeat)
			for ; a.cycles < cycles; a.cycles++ {
				if a.listener.OnRepeat != nil {
					due = append(due, a.listener.OnRepeat)
				}
			}
		}
	}

	if done && !a.ended {
		a.ended = true
		if a.listener.OnEnd != nil {
			due = append(due, a.listener.OnEnd)
		}
	}
	return due, a.ended
}
