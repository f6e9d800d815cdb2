package arcmenu

import (
	"fmt"
	"math"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/anim"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
)

// Settings configures an ArcMenu. Zero fields take the defaults from the
// constants package. Settings are fixed once the menu is constructed.
type Settings struct {
	// Radius of the arc in density-independent units (default: 100).
	Radius float64
	// Position is the corner the trigger is pinned to (default: bottom-left).
	Position geometry.Corner
	// Density converts Radius to pixels (default: 1).
	Density float64
	// Duration of the spins, the fly in/out and the selection feedback (default: 300ms).
	Duration time.Duration
	// StaggerWindow is spread over the items so item i starts i*StaggerWindow/N
	// after the toggle (default: 100ms).
	StaggerWindow time.Duration
	// SupersedeStaleBatches makes closing callbacks from a batch that has
	// since been superseded do nothing. Off by default: every callback acts
	// on the live state, and overlapping batches race.
	SupersedeStaleBatches bool
	// Clock drives the menu's timeline (default: time.Now).
	Clock anim.Clock
}

// DefaultSettings returns the settings used for zero fields.
func DefaultSettings() Settings {
	return Settings{}.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.Radius == 0 {
		s.Radius = constants.DefaultRadiusDP
	}
	if s.Position == geometry.CornerUnspecified {
		s.Position = geometry.DefaultCorner
	}
	if s.Density == 0 {
		s.Density = constants.DefaultDensity
	}
	if s.Duration == 0 {
		s.Duration = constants.DefaultDuration
	}
	if s.StaggerWindow == 0 {
		s.StaggerWindow = constants.DefaultStaggerWindow
	}
	if s.Clock == nil {
		s.Clock = time.Now
	}
	return s
}

// Validate rejects settings that would produce degenerate geometry.
func (s Settings) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: radius %v", geometry.ErrInvalidRadius, s.Radius)
	}
	if !(s.Density > 0) || math.IsInf(s.Density, 0) {
		return fmt.Errorf("arcmenu: density must be positive, got %v", s.Density)
	}
	if !s.Position.IsValid() {
		return fmt.Errorf("%w: %d", geometry.ErrInvalidCorner, int(s.Position))
	}
	if s.Duration < 0 || s.StaggerWindow < 0 {
		return fmt.Errorf("arcmenu: durations must not be negative")
	}
	return nil
}

// RadiusPixels is the arc radius after density scaling.
func (s Settings) RadiusPixels() float64 {
	return s.Radius * s.Density
}
