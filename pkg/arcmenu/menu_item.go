package arcmenu

import "github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"

// MenuItem describes the trigger or one arc item in a config file.
type MenuItem struct {
	Label  string `toml:"label"`  // Display text, also shown when there is no icon
	Icon   string `toml:"icon"`   // Path to an SVG or PNG icon, relative to the config file
	Tag    string `toml:"tag"`    // Application value returned on selection
	Width  int32  `toml:"width"`  // Preferred width in density-independent units
	Height int32  `toml:"height"` // Preferred height in density-independent units
}

// Element builds the element for this item, scaling the preferred size by
// density. Items without a tag use their label as the tag.
func (mi MenuItem) Element(density float64) *Element {
	e := NewElement(mi.Label).WithIcon(mi.Icon)
	if mi.Tag != "" {
		e.Tag = mi.Tag
	} else {
		e.Tag = mi.Label
	}
	e.PreferredSize = geometry.Size{
		W: int32(float64(mi.Width) * density),
		H: int32(float64(mi.Height) * density),
	}
	return e
}
