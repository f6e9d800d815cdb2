package internal

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// TextureFromImage uploads img as a blendable texture.
func TextureFromImage(renderer *sdl.Renderer, src image.Image) (*sdl.Texture, error) {
	pixels := Unpremultiply(src)
	w, h := pixels.Rect.Dx(), pixels.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("texture from image: empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&pixels.Pix[0]),
		int32(w), int32(h), 32, int32(pixels.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32),
	)
	if err != nil {
		return nil, fmt.Errorf("texture from image: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(pixels)
	if err != nil {
		return nil, fmt.Errorf("texture from image: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// LoadIcon reads an SVG or raster icon file and returns it at w x h.
// Raster files keep their own size and are scaled when drawn.
func LoadIcon(renderer *sdl.Renderer, path string, w, h int32) (*sdl.Texture, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return SVGTexture(renderer, data, w, h)
	}

	texture, err := img.LoadTexture(renderer, path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// SVGTexture rasterizes an in-memory SVG at w x h.
func SVGTexture(renderer *sdl.Renderer, data []byte, w, h int32) (*sdl.Texture, error) {
	pixels, err := RasterizeSVG(data, int(w), int(h))
	if err != nil {
		return nil, err
	}
	return TextureFromImage(renderer, pixels)
}

// TextureSize returns a texture's width and height, or zeros.
func TextureSize(texture *sdl.Texture) (int32, int32) {
	if texture == nil {
		return 0, 0
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	return w, h
}
