package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a single-record read matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is returned when a write violates a primary key,
	// uniqueness or foreign key constraint.
	ErrConstraint = errors.New("constraint violation")
)

// ConstraintError carries the driver error behind a constraint violation.
type ConstraintError struct {
	// Table is the table being written when the violation happened.
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConstraint, e.Table, e.Err)
}

// Is reports ErrConstraint so callers can match with errors.Is.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
