// Package internal contains the SDL infrastructure behind the arc menu's
// graphical host: window and renderer setup, input translation, theming,
// icon rasterization and texture caching.
// Types and functions in this package are not part of the public API.
package internal
