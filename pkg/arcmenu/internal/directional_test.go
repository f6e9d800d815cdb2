package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/stretchr/testify/require"
)

func TestDirectionalRepeat(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond, clock)

	require.False(t, d.SetHeld(constants.VirtualButtonA, true))
	require.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	require.Equal(t, DirectionDown, d.HeldDirection())

	now = now.Add(299 * time.Millisecond)
	require.Equal(t, DirectionNone, d.Update(), "first repeat waits for the delay")

	now = now.Add(time.Millisecond)
	require.Equal(t, DirectionDown, d.Update())

	now = now.Add(49 * time.Millisecond)
	require.Equal(t, DirectionNone, d.Update())
	now = now.Add(time.Millisecond)
	require.Equal(t, DirectionDown, d.Update(), "later repeats use the interval")

	d.SetHeld(constants.VirtualButtonDown, false)
	require.False(t, d.IsHeld())
	require.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalPriority(t *testing.T) {
	d := NewDirectionalInput()
	d.SetHeld(constants.VirtualButtonRight, true)
	d.SetHeld(constants.VirtualButtonUp, true)
	require.Equal(t, DirectionUp, d.HeldDirection())

	d.Reset()
	require.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, dir := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		require.Equal(t, dir, DirectionFor(dir.VirtualButton()), dir.String())
	}
	require.Equal(t, constants.VirtualButtonUnassigned, DirectionNone.VirtualButton())
}
