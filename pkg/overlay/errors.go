package overlay

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/overlay/pkg/overlay/router"
)

// Sentinel errors for common conditions.
var (
	// ErrNoSelectableItem indicates a menu list holds nothing the selection can land on.
	ErrNoSelectableItem = errors.New("menu list has no selectable item")

	// ErrSelectionOutOfRange indicates the selection points past the end of its list.
	ErrSelectionOutOfRange = errors.New("selection out of range")

	// ErrUnknownScreen is returned when a screen that was never registered is requested.
	ErrUnknownScreen = router.ErrUnknownScreen

	// ErrCancelled indicates the user backed out of a menu. It is normal flow
	// control, not a failure.
	ErrCancelled = errors.New("cancelled by user")
)

// InvariantError reports state the overlay must never reach, such as a list
// whose selection can find no item to land on. These are programming errors:
// the overlay panics with one rather than carry on with broken state.
type InvariantError struct {
	Op  string // Operation that found the broken state (e.g. "select", "layout")
	Err error  // Underlying error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("overlay: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("overlay: %s", e.Op)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// NewInvariantError creates a new invariant error.
func NewInvariantError(op string, err error) *InvariantError {
	return &InvariantError{Op: op, Err: err}
}

// IsInvariantError checks if an error is an invariant error.
func IsInvariantError(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
