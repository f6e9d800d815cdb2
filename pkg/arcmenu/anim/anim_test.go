package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time       { return c.now }
func (c *fakeClock) Step(d time.Duration) { c.now = c.now.Add(d) }
func (c *fakeClock) Timeline() *Timeline  { return NewTimeline(c.Now) }

type recorder struct {
	last  Transform
	count int
}

func (r *recorder) SetTransform(t Transform) {
	r.last = t
	r.count++
}

func TestLeafProgressAndFill(t *testing.T) {
	a := New(Translate{FromX: 100, ToX: 0}).WithDuration(100 * time.Millisecond).WithEasing(Linear)

	var tr Transform
	tr = Identity()
	a.Transformation(50*time.Millisecond, &tr)
	require.InDelta(t, 50, tr.DX, 1e-9)

	tr = Identity()
	a.Transformation(200*time.Millisecond, &tr)
	require.Equal(t, 0.0, tr.DX, "without fill-after the effect is dropped")

	a.WithFillAfter(true)
	tr = Identity()
	a.Transformation(200*time.Millisecond, &tr)
	require.InDelta(t, 0, tr.DX, 1e-9)

	b := New(Fade{From: 1, To: 0}).WithDuration(100 * time.Millisecond).WithEasing(Linear).WithFillAfter(true)
	tr = Identity()
	b.Transformation(time.Second, &tr)
	require.Equal(t, 0.0, tr.Alpha)
}

func TestDelayShowsFirstFrame(t *testing.T) {
	a := New(Translate{FromX: -140, ToX: 0}).
		WithDuration(300 * time.Millisecond).
		WithDelay(50 * time.Millisecond)

	tr := Identity()
	a.Transformation(10*time.Millisecond, &tr)
	require.Equal(t, -140.0, tr.DX)
}

func TestSetComposesChildren(t *testing.T) {
	set := NewSet(
		New(Uniform(1, 4)),
		New(Fade{From: 1, To: 0}),
		New(Rotate{From: 0, To: 720}),
	).WithDuration(300 * time.Millisecond).WithEasing(Linear).WithFillAfter(true)

	tr := Identity()
	set.Transformation(150*time.Millisecond, &tr)
	require.InDelta(t, 2.5, tr.ScaleX, 1e-9)
	require.InDelta(t, 2.5, tr.ScaleY, 1e-9)
	require.InDelta(t, 0.5, tr.Alpha, 1e-9)
	require.InDelta(t, 360, tr.Rotation, 1e-9)

	tr = Identity()
	set.Transformation(time.Second, &tr)
	require.InDelta(t, 4, tr.ScaleX, 1e-9)
	require.InDelta(t, 0, tr.Alpha, 1e-9)
	require.InDelta(t, 720, tr.Rotation, 1e-9)
	require.InDelta(t, 0, tr.NormalizedRotation(), 1e-9)
}

func TestEndAccountsForDelaysAndRepeats(t *testing.T) {
	set := NewSet(
		New(Rotate{To: 360}).WithDuration(300*time.Millisecond),
		New(Translate{ToX: 10}).WithDuration(300*time.Millisecond).WithDelay(75*time.Millisecond),
	)
	require.Equal(t, 375*time.Millisecond, set.End())

	rep := New(Fade{From: 1, To: 0}).WithDuration(100 * time.Millisecond).WithRepeat(2)
	require.Equal(t, 300*time.Millisecond, rep.End())
}

func TestTimelineFiresListenersInOrder(t *testing.T) {
	clock := newFakeClock()
	tl := clock.Timeline()
	target := &recorder{}

	var events []string
	a := New(Translate{FromX: 10}).
		WithDuration(100 * time.Millisecond).
		WithRepeat(1).
		WithListener(Listener{
			OnStart:  func() { events = append(events, "start") },
			OnRepeat: func() { events = append(events, "repeat") },
			OnEnd:    func() { events = append(events, "end") },
		})

	tl.Start(target, a)
	require.Equal(t, 1, target.count, "first frame is applied on start")
	require.Equal(t, 10.0, target.last.DX)
	require.Empty(t, events)

	tl.Advance()
	require.Equal(t, []string{"start"}, events)

	clock.Step(150 * time.Millisecond)
	tl.Advance()
	require.Equal(t, []string{"start", "repeat"}, events)

	clock.Step(100 * time.Millisecond)
	tl.Advance()
	require.Equal(t, []string{"start", "repeat", "end"}, events)
	require.Zero(t, tl.Running())
	require.True(t, target.last.IsIdentity())
}

func TestTimelineReplacedAnimationKeepsRunning(t *testing.T) {
	clock := newFakeClock()
	tl := clock.Timeline()
	target := &recorder{}

	var ended []string
	first := New(Translate{FromX: 0, ToX: 100}).WithDuration(300 * time.Millisecond).WithFillAfter(true).
		WithListener(Listener{OnEnd: func() { ended = append(ended, "first") }})
	second := New(Translate{FromX: 100, ToX: 0}).WithDuration(300 * time.Millisecond).WithFillAfter(true).WithEasing(Linear).
		WithListener(Listener{OnEnd: func() { ended = append(ended, "second") }})

	tl.Start(target, first)
	clock.Step(100 * time.Millisecond)
	tl.Advance()

	tl.Start(target, second)
	require.Equal(t, 2, tl.Running())
	require.Same(t, second, tl.Current(target))
	require.Equal(t, []*Animation{first, second}, tl.RunningOn(target))

	clock.Step(150 * time.Millisecond)
	tl.Advance()
	require.InDelta(t, 50, target.last.DX, 1e-9, "only the newest animation moves the target")

	clock.Step(100 * time.Millisecond)
	tl.Advance()
	require.Equal(t, []string{"first"}, ended)
	require.InDelta(t, 100.0/6, target.last.DX, 1e-6)

	tl.Settle(clock.Step, 16*time.Millisecond, time.Second)
	require.Equal(t, []string{"first", "second"}, ended)
	require.Nil(t, tl.Current(target))
	require.InDelta(t, 0, target.last.DX, 1e-9)
}

func TestTimelineCallbackMayStartAnimation(t *testing.T) {
	clock := newFakeClock()
	tl := clock.Timeline()
	target := &recorder{}

	follow := New(Fade{From: 1, To: 0}).WithDuration(50 * time.Millisecond)
	first := New(Rotate{To: 360}).WithDuration(50 * time.Millisecond).
		WithListener(Listener{OnEnd: func() { tl.Start(target, follow) }})

	tl.Start(target, first)
	clock.Step(60 * time.Millisecond)
	tl.Advance()

	require.Equal(t, 1, tl.Running())
	require.Same(t, follow, tl.Current(target))
}

func TestSetDelayAppliesToChildren(t *testing.T) {
	clock := newFakeClock()
	tl := clock.Timeline()
	target := &recorder{}

	var started bool
	child := New(Translate{ToX: 10}).WithDuration(100 * time.Millisecond).
		WithListener(Listener{OnStart: func() { started = true }})
	set := NewSet(child).WithDelay(50 * time.Millisecond)

	tl.Start(target, set)
	clock.Step(40 * time.Millisecond)
	tl.Advance()
	require.False(t, started)

	clock.Step(20 * time.Millisecond)
	tl.Advance()
	require.True(t, started)
}
