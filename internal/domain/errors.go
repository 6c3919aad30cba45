package domain

import (
	"fmt"
	"time"
)

// Domain errors represent error conditions in the yotei domain.
// They are returned by the public API and can be checked with errors.As.

// ValidationError reports malformed input: an empty subject, an inverted
// or zero-length interval, or an argument that failed to parse.
type ValidationError struct {
	// Field names the offending input ("subject", "interval", "id", ...).
	Field string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("yotei: invalid %s: %s", e.Field, e.Reason)
}

// OverlapError reports that a requested interval conflicts with an
// existing entry. It carries the conflicting entry so callers can name it.
type OverlapError struct {
	// Conflict is the existing entry the requested interval overlaps.
	Conflict Entry

	// Start and End are the requested interval that was rejected.
	Start time.Time
	End   time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("yotei: interval [%s, %s) overlaps entry %d %q [%s, %s)",
		e.Start.Format(TimeLayout), e.End.Format(TimeLayout),
		e.Conflict.ID, e.Conflict.Subject,
		e.Conflict.Start.Format(TimeLayout), e.Conflict.End.Format(TimeLayout))
}

// NotFoundError reports that no entry has the requested id.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("yotei: no entry with id %d", e.ID)
}

// PersistenceError reports an I/O or (de)serialization failure on the
// calendar file, on either the load or the save side.
type PersistenceError struct {
	// Op is the failing operation, "load" or "save".
	Op string

	// Path is the calendar file path.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("yotei: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
