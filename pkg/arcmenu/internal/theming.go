package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines how the graphical host draws the menu.
type Theme struct {
	AccentColor          sdl.Color // Trigger badge
	ItemColor            sdl.Color // Item badges
	LabelColor           sdl.Color // Text and glyphs drawn on badges
	ToastBackgroundColor sdl.Color // Selection toast pill
	ToastTextColor       sdl.Color // Selection toast text
	BackgroundColor      sdl.Color // Screen clear color
	FontPath             string    // TTF used for labels and toasts
	BackgroundImagePath  string    // Optional image drawn behind the menu
}

var currentTheme = Theme{
	AccentColor:          HexToColor(0x008080),
	ItemColor:            HexToColor(0xE0E0E0),
	LabelColor:           HexToColor(0x000000),
	ToastBackgroundColor: HexToColor(0x202020),
	ToastTextColor:       HexToColor(0xFFFFFF),
	BackgroundColor:      HexToColor(0x000000),
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ThemeOverrides replaces individual colors; zero keeps the current one.
type ThemeOverrides struct {
	Accent, Item, Label        uint32
	ToastBackground, ToastText uint32
	Background                 uint32
	FontPath                   string
}

// Apply returns t with every non-zero override applied.
func (t Theme) Apply(o ThemeOverrides) Theme {
	set := func(dst *sdl.Color, hex uint32) {
		if hex != 0 {
			*dst = HexToColor(hex)
		}
	}
	set(&t.AccentColor, o.Accent)
	set(&t.ItemColor, o.Item)
	set(&t.LabelColor, o.Label)
	set(&t.ToastBackgroundColor, o.ToastBackground)
	set(&t.ToastTextColor, o.ToastText)
	set(&t.BackgroundColor, o.Background)
	if o.FontPath != "" {
		t.FontPath = o.FontPath
	}
	return t
}
