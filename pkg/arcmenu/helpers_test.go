package arcmenu

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time       { return c.now }
func (c *fakeClock) Step(d time.Duration) { c.now = c.now.Add(d) }

type menuOptions struct {
	items     int
	corner    geometry.Corner
	supersede bool
}

// newTestMenu builds a 400x400 menu with a 40x40 trigger and 40x40 items on
// a 140px arc, laid out and closed.
func newTestMenu(t *testing.T, clock *fakeClock, opts menuOptions) *ArcMenu {
	t.Helper()

	m, err := New(Settings{
		Radius:                140,
		Position:              opts.corner,
		SupersedeStaleBatches: opts.supersede,
		Clock:                 clock.Now,
	})
	require.NoError(t, err)

	m.AddChild(NewElement("+").WithSize(40, 40))
	for i := 0; i < opts.items; i++ {
		m.AddChild(NewElement(string(rune('a' + i))).WithSize(40, 40))
	}
	require.NoError(t, m.Layout(400, 400))
	return m
}

func settle(m *ArcMenu, clock *fakeClock) {
	m.Timeline().Settle(clock.Step, frame, 5*time.Second)
}

func openAndSettle(t *testing.T, m *ArcMenu, clock *fakeClock) {
	t.Helper()
	require.NoError(t, m.Toggle())
	settle(m, clock)
	require.True(t, m.IsOpen())
	require.Zero(t, m.Running())
}
