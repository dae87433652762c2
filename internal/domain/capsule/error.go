package capsule

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("capsule not found")
	ErrLocked   = errors.New("capsule is still locked")
	ErrNotOwner = errors.New("not the capsule owner")
)

// ValidationError names the offending request field so handlers can return
// a per-field 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
