// Package cannoli provides the arc menu theme for the Cannoli custom
// firmware, a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/internal"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// MenuButtonCode is the Linux key code of the handheld's menu button.
const MenuButtonCode = 316

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return internal.Theme{
		AccentColor:          internal.HexToColor(0x008080),
		ItemColor:            internal.HexToColor(0xFFFFFF),
		LabelColor:           internal.HexToColor(0x000000),
		ToastBackgroundColor: internal.HexToColor(0x008080),
		ToastTextColor:       internal.HexToColor(0xFFFFFF),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontPath,
	}
}
