package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a scoped lookup matches nothing. It
// deliberately does not say whether the row exists under another
// tenant.
var ErrNotFound = errors.New("resource not found")

// ConflictError reports a scoped uniqueness collision on a named field.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already in use", e.Field, e.Value)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// BadReferenceError reports a timetable composition that names a
// record the requesting admin does not have.
type BadReferenceError struct {
	Kind string
	ID   int
}

func (e *BadReferenceError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Kind, e.ID)
}

// IsBadReference reports whether err is a BadReferenceError.
func IsBadReference(err error) bool {
	var bre *BadReferenceError
	return errors.As(err, &bre)
}
