package sdlhost

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	minBadgeSize = 48 // px at density 1
	labelPadding = 12
)

// measure sizes an element that has no preferred size: a circle big enough
// for its label, and never smaller than minBadgeSize.
func (h *Host) measure(e *arcmenu.Element, limit geometry.Size) geometry.Size {
	if e.PreferredSize.W > 0 && e.PreferredSize.H > 0 {
		return clampSize(e.PreferredSize, limit)
	}

	density := h.menu.Settings().Density
	d := int32(math.Round(minBadgeSize * density))
	if font := internal.Fonts.Label; font != nil && e.Icon == "" && e.Label != "" {
		if w, ht, err := font.SizeUTF8(e.Label); err == nil {
			d = max(d, int32(max(w, ht))+int32(2*labelPadding*density))
		}
	}
	return clampSize(geometry.Size{W: d, H: d}, limit)
}

func (h *Host) render() {
	h.window.Clear()
	for i, e := range h.menu.Children() {
		h.drawElement(e, i == 0)
	}
	h.toast.draw(h.window.Renderer, h.width, h.height)
}

// drawElement draws e at its visual rect, spun about its centre and faded
// by its transform.
func (h *Host) drawElement(e *arcmenu.Element, trigger bool) {
	if !e.Visible() {
		return
	}
	t := e.Transform()
	dst := toSDLRect(e.VisualRect())
	alpha := alphaMod(t.Alpha)
	if dst.W <= 0 || dst.H <= 0 || alpha == 0 {
		return
	}

	renderer := h.window.Renderer
	angle := t.NormalizedRotation()

	badge := h.texture(e, "badge", func() (*sdl.Texture, error) { return h.buildBadge(e, trigger) })
	if badge == nil {
		return
	}
	badge.SetAlphaMod(alpha)
	renderer.CopyEx(badge, nil, &dst, angle, nil, sdl.FLIP_NONE)

	if isRasterIcon(e.Icon) {
		icon := h.texture(e, "icon", func() (*sdl.Texture, error) {
			size := e.Size()
			return internal.LoadIcon(renderer, e.Icon, size.W, size.H)
		})
		if icon != nil {
			inset := centered(dst, dst.W/2, dst.H/2)
			icon.SetAlphaMod(alpha)
			renderer.CopyEx(icon, nil, &inset, angle, nil, sdl.FLIP_NONE)
		}
	} else if e.Icon == "" && !trigger && internal.Fonts.Label != nil {
		label := h.texture(e, "label", func() (*sdl.Texture, error) {
			return internal.RenderText(renderer, e.Label, internal.Fonts.Label, internal.GetTheme().LabelColor)
		})
		if label != nil {
			lw, lh := internal.TextureSize(label)
			ldst := centered(dst, int32(float64(lw)*t.ScaleX), int32(float64(lh)*t.ScaleY))
			label.SetAlphaMod(alpha)
			renderer.CopyEx(label, nil, &ldst, angle, nil, sdl.FLIP_NONE)
		}
	}

	if e.Focused() {
		accent := internal.GetTheme().AccentColor
		renderer.SetDrawColor(accent.R, accent.G, accent.B, alpha)
		ring := sdl.Rect{X: dst.X - 2, Y: dst.Y - 2, W: dst.W + 4, H: dst.H + 4}
		renderer.DrawRect(&ring)
	}
}

// texture returns the cached texture for e's variant. A texture that fails
// to build is logged once and then skipped.
func (h *Host) texture(e *arcmenu.Element, variant string, build func() (*sdl.Texture, error)) *sdl.Texture {
	size := e.Size()
	key := fmt.Sprintf("%s:%s:%dx%d", e.ID, variant, size.W, size.H)
	if _, broken := h.broken[key]; broken {
		return nil
	}

	texture, err := h.textures.GetOrCreate(key, build)
	if err != nil {
		h.broken[key] = struct{}{}
		logging.GetInternalLogger().Error("Failed to build texture",
			"element", e.ID, "label", e.Label, "variant", variant, "error", err)
		return nil
	}
	return texture
}

// buildBadge draws the element's circle with its SVG glyph on top. The
// trigger falls back to a plus sign.
func (h *Host) buildBadge(e *arcmenu.Element, trigger bool) (*sdl.Texture, error) {
	size := e.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("element has no size")
	}

	theme := internal.GetTheme()
	fill := theme.ItemColor
	if trigger {
		fill = theme.AccentColor
	}
	img := internal.Badge(int(size.W), int(size.H), color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: fill.A})

	var glyph []byte
	switch {
	case strings.EqualFold(filepath.Ext(e.Icon), ".svg"):
		data, err := os.ReadFile(e.Icon)
		if err != nil {
			return nil, err
		}
		glyph = data
	case e.Icon == "" && trigger:
		glyph = []byte(constants.PlusIconSVG)
	}

	if glyph != nil {
		inset := int(min(size.W, size.H) / 4)
		rendered, err := internal.RasterizeSVG(glyph, int(size.W)-2*inset, int(size.H)-2*inset)
		if err != nil {
			return nil, err
		}
		internal.Overlay(img, rendered, inset)
	}

	return internal.TextureFromImage(h.window.Renderer, img)
}

func isRasterIcon(path string) bool {
	return path != "" && !strings.EqualFold(filepath.Ext(path), ".svg")
}

func toSDLRect(r geometry.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// centered returns a w x h rect sharing r's centre.
func centered(r sdl.Rect, w, h int32) sdl.Rect {
	return sdl.Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

func alphaMod(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

// clampSize caps s to limit; a zero limit axis is unbounded.
func clampSize(s, limit geometry.Size) geometry.Size {
	if limit.W > 0 {
		s.W = min(s.W, limit.W)
	}
	if limit.H > 0 {
		s.H = min(s.H, limit.H)
	}
	return s
}
