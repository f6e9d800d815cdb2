package sdlhost

import (
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// toast is a short message pill at the bottom of the window.
type toast struct {
	text    string
	until   time.Time
	padding internal.Padding
	margin  int32
	now     func() time.Time

	texture  *sdl.Texture
	rendered string
}

func newToast(density float64) *toast {
	return &toast{
		padding: internal.SymmetricPadding(10, 20).Scale(density),
		margin:  int32(24 * density),
		now:     time.Now,
	}
}

func (t *toast) show(text string, d time.Duration) {
	t.text = text
	t.until = t.now().Add(d)
}

func (t *toast) visible() bool {
	return t.text != "" && t.now().Before(t.until)
}

// box is where the pill goes for text of size tw x th in a w x h window.
func (t *toast) box(tw, th, w, h int32) sdl.Rect {
	bw := tw + t.padding.Horizontal()
	bh := th + t.padding.Vertical()
	return sdl.Rect{X: (w - bw) / 2, Y: h - bh - t.margin, W: bw, H: bh}
}

func (t *toast) draw(renderer *sdl.Renderer, w, h int32) {
	font := internal.Fonts.Toast
	if !t.visible() || font == nil {
		return
	}

	theme := internal.GetTheme()
	if t.rendered != t.text {
		t.destroy()
		texture, err := internal.RenderText(renderer, t.text, font, theme.ToastTextColor)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to render toast", "error", err)
			t.text = ""
			return
		}
		t.texture, t.rendered = texture, t.text
	}

	tw, th := internal.TextureSize(t.texture)
	box := t.box(tw, th, w, h)

	bg := theme.ToastBackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.FillRect(&box)
	renderer.Copy(t.texture, nil, &sdl.Rect{X: box.X + t.padding.Left, Y: box.Y + t.padding.Top, W: tw, H: th})
}

func (t *toast) destroy() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
	t.rendered = ""
}
