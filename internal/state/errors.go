package state

import (
	"errors"
	"fmt"
)

// ErrShortcutNotFound is returned by Find when no shortcut has the given id.
var ErrShortcutNotFound = errors.New("shortcut not found")

// ValidationError reports bad local input before anything is persisted or
// sent to the remote service.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
