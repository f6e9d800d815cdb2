package internal

import (
	"image/color"
	"testing"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/stretchr/testify/require"
)

func TestRasterizeSVG(t *testing.T) {
	img, err := RasterizeSVG([]byte(constants.PlusIconSVG), 48, 48)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())

	_, _, _, centre := img.At(24, 24).RGBA()
	_, _, _, corner := img.At(1, 1).RGBA()
	require.NotZero(t, centre, "the plus covers the centre")
	require.Zero(t, corner)

	_, err = RasterizeSVG([]byte(constants.PlusIconSVG), 0, 10)
	require.Error(t, err)
}

func TestBadge(t *testing.T) {
	teal := color.NRGBA{R: 0, G: 0x80, B: 0x80, A: 0xFF}
	img := Badge(40, 40, teal)

	_, _, _, centre := img.At(20, 20).RGBA()
	_, _, _, corner := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xFFFF), centre)
	require.Zero(t, corner)

	straight := Unpremultiply(img)
	require.Equal(t, teal, straight.NRGBAAt(20, 20))
}

func TestOverlay(t *testing.T) {
	dst := Badge(40, 40, color.White)
	dot, err := RasterizeSVG([]byte(constants.DotIconSVG), 20, 20)
	require.NoError(t, err)

	Overlay(dst, dot, 10)
	r, g, b, a := dst.At(20, 20).RGBA()
	require.Equal(t, [4]uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, [4]uint32{r, g, b, a})
}
