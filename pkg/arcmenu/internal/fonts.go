package internal

import (
	"fmt"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes before density scaling.
type FontSizes struct {
	Label int
	Toast int
}

var DefaultFontSizes = FontSizes{
	Label: 16,
	Toast: 22,
}

type FontSet struct {
	Label *ttf.Font
	Toast *ttf.Font
}

// Fonts is nil-safe to read: a missing font leaves its field nil and the
// host skips text it cannot draw.
var Fonts FontSet

func initFonts(path string, sizes FontSizes, scale float64) {
	if path == "" {
		logging.GetInternalLogger().Warn("No font configured; labels and toasts are disabled")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, int(float64(size)*scale))
		if err != nil {
			logging.GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		Label: open(sizes.Label),
		Toast: open(sizes.Toast),
	}
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.Label, Fonts.Toast} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = FontSet{}
}

// RenderText draws text into a new texture.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) (*sdl.Texture, error) {
	if text == "" || font == nil {
		return nil, fmt.Errorf("render text: nothing to render")
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return texture, nil
}
