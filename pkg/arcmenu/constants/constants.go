// Package constants defines shared constants, types, and configuration values
// used throughout the arc menu widget and its hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the widget and its hosts.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	DebugEnvVar          = "ARCMENU_DEBUG"
	RadiusEnvVar         = "ARCMENU_RADIUS"
	PositionEnvVar       = "ARCMENU_POSITION"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Arc menu defaults.
const (
	DefaultRadiusDP      = 100.0                  // Arc radius in density-independent units
	DefaultDensity       = 1.0                    // Pixels per density-independent unit
	DefaultDuration      = 300 * time.Millisecond // D: spin, translate and feedback duration
	DefaultStaggerWindow = 100 * time.Millisecond // Item i starts i*window/N after the toggle
	DefaultInputDelay    = 20 * time.Millisecond  // Debounce delay between input events
	DefaultToastDuration = 2 * time.Second        // How long a selection toast stays up
	DefaultFrameInterval = 16 * time.Millisecond  // ~60fps frame pacing without VSync
)

// Decorative motion.
const (
	TriggerSpinDegrees = 360.0 // Trigger spin on every activation
	ItemSpinDegrees    = 720.0 // Item self-rotation while flying in or out
	GrowScale          = 4.0   // Selected item grows to this scale while fading
)
