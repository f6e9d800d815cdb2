package arcmenu

import (
	"testing"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := New(Settings{Radius: -1})
	require.ErrorIs(t, err, geometry.ErrInvalidRadius)

	_, err = New(Settings{Position: geometry.Corner(9)})
	require.ErrorIs(t, err, geometry.ErrInvalidCorner)

	_, err = New(Settings{Density: -2})
	require.Error(t, err)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.Equal(t, constants.DefaultRadiusDP, s.Radius)
	require.Equal(t, geometry.CornerBottomLeft, s.Position)
	require.Equal(t, constants.DefaultDuration, s.Duration)
	require.Equal(t, constants.DefaultStaggerWindow, s.StaggerWindow)
	require.False(t, s.SupersedeStaleBatches)
	require.NotNil(t, s.Clock)

	s.Density = 2
	require.Equal(t, 2*constants.DefaultRadiusDP, s.RadiusPixels())
}

func TestLayoutWithoutChildren(t *testing.T) {
	m, err := New(Settings{})
	require.NoError(t, err)
	require.ErrorIs(t, m.Layout(100, 100), ErrNoTrigger)
	require.Nil(t, m.Trigger())
	require.Nil(t, m.Items())
}

func TestOperationsBeforeLayout(t *testing.T) {
	m, err := New(Settings{})
	require.NoError(t, err)
	m.AddChild(NewElement("+").WithSize(40, 40))
	m.AddChild(NewElement("a").WithSize(40, 40))

	require.ErrorIs(t, m.Toggle(), ErrNotLaidOut)
	require.ErrorIs(t, m.Select(1), ErrNotLaidOut)
	require.Equal(t, ActionNone, m.Click(0, 0))
	require.Equal(t, ActionNone, m.HandleButton(constants.VirtualButtonMenu))
	require.False(t, m.IsOpen())
}

func TestLayoutPlacesTriggerAndItems(t *testing.T) {
	m := newTestMenu(t, newFakeClock(), menuOptions{items: 4})

	require.Equal(t, geometry.Rect{X: 0, Y: 360, W: 40, H: 40}, m.Trigger().Rect())
	require.True(t, m.Trigger().Visible())
	require.True(t, m.Trigger().Clickable())

	want := []geometry.Rect{
		{X: 0, Y: 220, W: 40, H: 40},
		{X: 70, Y: 239, W: 40, H: 40},
		{X: 121, Y: 290, W: 40, H: 40},
		{X: 140, Y: 360, W: 40, H: 40},
	}
	for i, item := range m.Items() {
		require.Equal(t, want[i], item.Rect(), "item %d", i)
		require.False(t, item.Visible(), "closed menus hide their items")
		require.False(t, item.Clickable())
	}
	require.Equal(t, geometry.Size{W: 400, H: 400}, m.Size())
	require.Len(t, m.CollapseOffsets(), 4)
}

func TestLayoutTopRight(t *testing.T) {
	m := newTestMenu(t, newFakeClock(), menuOptions{items: 2, corner: geometry.CornerTopRight})

	require.Equal(t, geometry.Rect{X: 360, Y: 0, W: 40, H: 40}, m.Trigger().Rect())
	require.Equal(t, geometry.Rect{X: 360, Y: 140, W: 40, H: 40}, m.Items()[0].Rect())
	require.Equal(t, geometry.Rect{X: 220, Y: 0, W: 40, H: 40}, m.Items()[1].Rect())

	require.Equal(t, geometry.Offset{X: 0, Y: -140}, m.CollapseOffsets()[0])
	require.Equal(t, geometry.Offset{X: 140, Y: 0}, m.CollapseOffsets()[1])
}

func TestLayoutKeepsOpenItemsVisible(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 3})
	openAndSettle(t, m, clock)

	require.NoError(t, m.Layout(300, 300))
	for _, item := range m.Items() {
		require.True(t, item.Visible())
	}
	require.Equal(t, geometry.Rect{X: 0, Y: 120, W: 40, H: 40}, m.Items()[0].Rect())
}

func TestMeasure(t *testing.T) {
	m, err := New(Settings{Radius: 140})
	require.NoError(t, err)
	m.AddChild(NewElement("+").WithSize(40, 40))
	for i := 0; i < 3; i++ {
		m.AddChild(NewElement("x").WithSize(40, 40))
	}

	require.Equal(t, geometry.Size{W: 180, H: 180}, m.Measure(nil, Unspecified(), Unspecified()))
	require.Equal(t, geometry.Size{W: 100, H: 180}, m.Measure(nil, AtMost(100), AtMost(500)))
	require.Equal(t, geometry.Size{W: 500, H: 320}, m.Measure(nil, Exactly(500), Exactly(320)))

	var seen []geometry.Size
	big := MeasurerFunc(func(e *Element, limit geometry.Size) geometry.Size {
		seen = append(seen, limit)
		if e.Label == "+" {
			return geometry.Size{W: 64, H: 64}
		}
		return geometry.Size{}
	})
	require.Equal(t, geometry.Size{W: 180, H: 180}, m.Measure(big, Unspecified(), AtMost(600)))
	require.Equal(t, geometry.Size{W: 64, H: 64}, m.Trigger().Size())
	require.Equal(t, geometry.Size{W: 40, H: 40}, m.Items()[0].Size(), "zero falls back to the preferred size")
	require.Equal(t, geometry.Size{W: 0, H: 600}, seen[0])
}

func TestSelectValidatesPosition(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 4})

	require.ErrorIs(t, m.Select(1), ErrNotInteractive, "closed items cannot be selected")

	openAndSettle(t, m, clock)
	require.ErrorIs(t, m.Select(0), ErrInvalidPosition)
	require.ErrorIs(t, m.Select(5), ErrInvalidPosition)
	require.True(t, m.IsOpen())
}

func TestClickDispatch(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 4})

	var got []int
	m.OnItemSelected(func(_ *Element, position int) { got = append(got, position) })

	require.Equal(t, ActionNone, m.Click(90, 259), "hidden items are transparent")
	require.Equal(t, ActionNone, m.Click(399, 0))

	require.Equal(t, ActionToggled, m.Click(20, 380))
	settle(m, clock)
	require.True(t, m.IsOpen())

	require.Equal(t, ActionSelected, m.Click(90, 259))
	require.Equal(t, []int{2}, got)
	require.False(t, m.IsOpen())

	require.Equal(t, ActionNone, m.Click(90, 259), "feedback items do not take clicks")
}

func TestHandleButton(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 4})

	var got []int
	m.OnItemSelected(func(_ *Element, position int) { got = append(got, position) })

	require.Equal(t, ActionNone, m.HandleButton(constants.VirtualButtonDown), "nothing to focus while closed")
	require.Equal(t, ActionNone, m.HandleButton(constants.VirtualButtonB))

	require.Equal(t, ActionToggled, m.HandleButton(constants.VirtualButtonMenu))
	settle(m, clock)

	require.Equal(t, ActionFocusMoved, m.HandleButton(constants.VirtualButtonDown))
	require.Equal(t, 0, m.FocusedItem())
	require.True(t, m.Items()[0].Focused())

	require.Equal(t, ActionFocusMoved, m.HandleButton(constants.VirtualButtonUp))
	require.Equal(t, 3, m.FocusedItem(), "focus wraps")
	require.False(t, m.Items()[0].Focused())

	require.Equal(t, ActionSelected, m.HandleButton(constants.VirtualButtonA))
	require.Equal(t, []int{4}, got)
	require.Equal(t, -1, m.FocusedItem())
	require.False(t, m.Items()[3].Focused())

	settle(m, clock)
	require.Equal(t, ActionToggled, m.HandleButton(constants.VirtualButtonA), "A with no focus toggles")
	require.True(t, m.IsOpen())
	require.Equal(t, ActionToggled, m.HandleButton(constants.VirtualButtonB))
	require.False(t, m.IsOpen())
}

func TestElementVisualRect(t *testing.T) {
	e := NewElement("x")
	e.rect = geometry.Rect{X: 100, Y: 100, W: 40, H: 40}
	require.Equal(t, e.rect, e.VisualRect())

	tr := e.Transform()
	tr.DX, tr.DY = -100, 20
	tr.ScaleX, tr.ScaleY = 2, 2
	e.SetTransform(tr)

	require.Equal(t, geometry.Rect{X: -20, Y: 100, W: 80, H: 80}, e.VisualRect())
	require.True(t, e.Contains(100, 100), "clicks hit the laid-out rect")
	require.False(t, e.Contains(0, 110))
}

func TestTriggerClickWhileOpening(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 2})

	var got []int
	m.OnItemSelected(func(_ *Element, position int) { got = append(got, position) })

	require.Equal(t, ActionToggled, m.Click(20, 380))
	clock.Step(frame)
	m.Update()
	require.Equal(t, m.Trigger().Rect(), m.Items()[1].VisualRect(), "items still sit on the trigger")

	require.Equal(t, ActionToggled, m.Click(20, 380))
	require.Empty(t, got)
	require.False(t, m.IsOpen())
	require.Equal(t, uint64(2), m.LastBatch())

	settle(m, clock)
	for i, item := range m.Items() {
		require.False(t, item.Visible(), "item %d", i)
	}
}

func TestRelayoutDuringCloseKeepsFlight(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(t, clock, menuOptions{items: 3})
	openAndSettle(t, m, clock)

	require.NoError(t, m.Toggle())
	clock.Step(frame)
	m.Update()
	require.NoError(t, m.Layout(400, 400))
	for i, item := range m.Items() {
		require.True(t, item.Visible(), "item %d is still flying home", i)
	}

	settle(m, clock)
	require.NoError(t, m.Layout(400, 400))
	for i, item := range m.Items() {
		require.False(t, item.Visible(), "item %d", i)
	}
}
