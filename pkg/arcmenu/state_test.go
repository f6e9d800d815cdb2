package arcmenu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMachineStartsClosed(t *testing.T) {
	m := NewMachine()
	require.Equal(t, StatusClosed, m.Status())
	require.False(t, m.IsOpen())
	require.Zero(t, m.LatestBatch())
}

func TestMachineToggleAlternates(t *testing.T) {
	m := NewMachine()

	open := m.Toggle()
	require.Equal(t, StatusClosed, open.From)
	require.Equal(t, StatusOpen, open.To)
	require.Equal(t, Batch{ID: 1, Direction: DirectionOpening}, open.Batch)
	require.True(t, open.Interactive)
	require.True(t, open.ShowNow)
	require.True(t, m.IsOpen())

	closing := m.Toggle()
	require.Equal(t, StatusOpen, closing.From)
	require.Equal(t, StatusClosed, closing.To)
	require.Equal(t, Batch{ID: 2, Direction: DirectionClosing}, closing.Batch)
	require.False(t, closing.Interactive)
	require.False(t, closing.ShowNow)
	require.False(t, m.IsOpen())
}

func TestMachineIsLatest(t *testing.T) {
	m := NewMachine()
	first := m.Toggle().Batch
	require.True(t, m.IsLatest(first))

	second := m.Toggle().Batch
	require.False(t, m.IsLatest(first))
	require.True(t, m.IsLatest(second))
	require.Equal(t, uint64(2), m.LatestBatch())
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "open", StatusOpen.String())
	require.Equal(t, "closed", StatusClosed.String())
	require.Equal(t, "opening", DirectionOpening.String())
	require.Equal(t, "closing", DirectionClosing.String())
	require.Equal(t, "focus_moved", ActionFocusMoved.String())
	require.Equal(t, "none", Action(42).String())
}
