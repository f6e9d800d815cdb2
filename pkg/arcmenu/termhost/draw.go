package termhost

import (
	"math"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	triggerStyle = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	itemStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	toastStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorTeal)
)

func text(e *arcmenu.Element) string {
	return "[" + e.Label + "]"
}

func (h *Host) draw() {
	h.screen.Clear()
	for i, e := range h.menu.Children() {
		h.drawElement(e, i == 0)
	}
	h.drawToast()
	h.screen.Show()
}

// drawElement centres the element's text on its visual rect. Terminals
// cannot rotate or scale text, so a spinning trigger swaps between + and x,
// a shrunk item collapses to a dot and fading dims it.
func (h *Host) drawElement(e *arcmenu.Element, trigger bool) {
	if !e.Visible() {
		return
	}
	t := e.Transform()
	if t.Alpha < 0.15 {
		return
	}

	style := itemStyle
	if trigger {
		style = triggerStyle
	}
	if t.Alpha < 0.6 {
		style = style.Dim(true)
	}
	if t.ScaleX > 1.5 {
		style = style.Bold(true)
	}
	if e.Focused() {
		style = style.Reverse(true)
	}

	vr := e.VisualRect()
	col := int(vr.X + vr.W/2)
	row := int(math.Floor(float64(vr.Y+vr.H/2) / cellAspect))

	label := text(e)
	switch {
	case trigger && e.Label == "+":
		label = "[" + string(spinGlyph(t.NormalizedRotation())) + "]"
	case t.ScaleX < 0.5:
		label = "·"
	}
	h.put(col-runewidth.StringWidth(label)/2, row, label, style)
}

// spinGlyph alternates + and x every 45 degrees.
func spinGlyph(degrees float64) rune {
	d := math.Mod(math.Round(degrees), 360)
	if d < 0 {
		d += 360
	}
	if int(d/45)%2 == 0 {
		return '+'
	}
	return 'x'
}

func (h *Host) put(x, y int, s string, style tcell.Style) {
	cols, rows := h.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x+w <= cols {
			h.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}

func (h *Host) drawToast() {
	if !h.toast.visible() {
		return
	}
	cols, _ := h.screen.Size()
	msg := " " + h.toast.text + " "
	h.put((cols-runewidth.StringWidth(msg))/2, 0, msg, toastStyle)
}

// toast is a message on the top row that expires.
type toast struct {
	text  string
	until time.Time
	now   func() time.Time
}

func (t *toast) show(text string, d time.Duration) {
	t.text = text
	t.until = t.now().Add(d)
}

func (t *toast) visible() bool {
	return t.text != "" && t.now().Before(t.until)
}
