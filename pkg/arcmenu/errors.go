package arcmenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for widget misuse and configuration problems.
var (
	// ErrNoTrigger is returned by Layout when the menu has no children.
	// Child 0 is always the trigger, so an empty menu cannot be activated.
	ErrNoTrigger = errors.New("arcmenu: menu has no trigger element")

	// ErrNotLaidOut is returned when the menu is toggled or an item is
	// selected before the first successful Layout.
	ErrNotLaidOut = errors.New("arcmenu: menu has not been laid out")

	// ErrInvalidPosition is returned by Select for a position outside 1..N.
	ErrInvalidPosition = errors.New("arcmenu: item position out of range")

	// ErrNotInteractive is returned by Select when the item is not
	// clickable, i.e. the menu is closed or a selection is already playing.
	ErrNotInteractive = errors.New("arcmenu: item is not interactive")
)

// InfrastructureError represents a host-level failure (window creation,
// renderer, font or texture loading). The widget core never returns one;
// hosts use it so applications can tell framework failures from misuse.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arcmenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("arcmenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// ConfigError reports a config file that could not be read, decoded or
// validated.
type ConfigError struct {
	Path string // Empty for in-memory documents
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("arcmenu: config: %v", e.Err)
	}
	return fmt.Sprintf("arcmenu: config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
