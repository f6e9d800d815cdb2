package arcmenu

// Action reports what an input event did to the menu.
type Action int

const (
	ActionNone       Action = iota // Event did not hit anything interactive
	ActionToggled                  // Trigger activated; the menu opened or closed
	ActionSelected                 // An item was selected; the menu closed
	ActionFocusMoved               // Directional input moved focus between items
)

func (a Action) String() string {
	switch a {
	case ActionToggled:
		return "toggled"
	case ActionSelected:
		return "selected"
	case ActionFocusMoved:
		return "focus_moved"
	default:
		return "none"
	}
}
