package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	require.Equal(t, sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}, HexToColor(0x008080))
	require.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, HexToColor(0x123456))
}

func TestThemeApply(t *testing.T) {
	base := GetTheme()
	themed := base.Apply(ThemeOverrides{Accent: 0xFF0000, FontPath: "/fonts/a.ttf"})

	require.Equal(t, HexToColor(0xFF0000), themed.AccentColor)
	require.Equal(t, base.ItemColor, themed.ItemColor, "zero keeps the current color")
	require.Equal(t, "/fonts/a.ttf", themed.FontPath)
}

func TestPadding(t *testing.T) {
	p := SymmetricPadding(4, 10)
	require.Equal(t, int32(20), p.Horizontal())
	require.Equal(t, int32(8), p.Vertical())
	require.Equal(t, SymmetricPadding(6, 2), SymmetricPadding(3, 1).Scale(2))
	require.Equal(t, SymmetricPadding(15, 30), SymmetricPadding(10, 20).Scale(1.5))
}
