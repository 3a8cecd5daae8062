package service

import "fmt"

// Guarded-delete reasons
const (
	GuardHasChildren   = "has_children"
	GuardHasDependents = "has_dependents"
)

// NotFoundError is returned when a requested entity, or an entity referenced
// by a foreign key in the payload, does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// ConflictError is returned when a create or update would violate a
// business-key uniqueness constraint.
type ConflictError struct {
	Entity     string
	Key        string
	Value      string
	ExistingID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Key, e.Value)
}

// GuardedDeleteError is returned when a deletion is blocked by dependent
// rows. Count carries the number of dependents for has_dependents.
type GuardedDeleteError struct {
	Entity string
	Reason string
	Count  int64
}

func (e *GuardedDeleteError) Error() string {
	switch e.Reason {
	case GuardHasChildren:
		return fmt.Sprintf("cannot delete %s: it has subcategories, delete or move them first", e.Entity)
	case GuardHasDependents:
		return fmt.Sprintf("cannot delete %s: %d product(s) reference it", e.Entity, e.Count)
	}
	return fmt.Sprintf("cannot delete %s", e.Entity)
}

// ValidationError is returned for malformed or out-of-range field values,
// detected before any lookup occurs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// requireMaxLen returns a ValidationError when s exceeds n characters.
func requireMaxLen(field, s string, n int) error {
	if len(s) > n {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", n)}
	}
	return nil
}

// requireNonEmpty returns a ValidationError when s is empty.
func requireNonEmpty(field, s string) error {
	if s == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
