package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services unwraps to one of them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
	ErrPartialClose = errors.New("work entries saved but payroll run was not closed")
)

var (
	ErrInvalidPeriod    = fmt.Errorf("period end is before period start: %w", ErrValidation)
	ErrRunAlreadyOpen   = fmt.Errorf("another payroll run is already open: %w", ErrValidation)
	ErrNoValidEntries   = fmt.Errorf("must supply at least one valid entry: %w", ErrValidation)
	ErrInvalidInput     = fmt.Errorf("invalid pay input: %w", ErrValidation)
	ErrRunClosed        = fmt.Errorf("payroll run is closed: %w", ErrInvalidState)
	ErrRunNotFound      = fmt.Errorf("payroll run %w", ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrEntryNotFound    = fmt.Errorf("work entry %w", ErrNotFound)
	ErrLoginTaken       = fmt.Errorf("login is already taken: %w", ErrInvalidState)
	ErrEmployeeInUse    = fmt.Errorf("employee has work entries, deactivate instead: %w", ErrInvalidState)
)

// FieldError names the invalid field of a request.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// EntryError points at the first offending entry of a submitted batch.
type EntryError struct {
	Index      int
	EmployeeID int
	Err        error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry #%d (employee %d): %v", e.Index, e.EmployeeID, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// PartialCloseError reports entries that were persisted for a run that then
// failed to close. Only the close step needs to be retried.
type PartialCloseError struct {
	RunID   int
	Entries []WorkEntry
	Err     error
}

func (e *PartialCloseError) Error() string {
	return fmt.Sprintf("payroll run %d: %v: %v", e.RunID, ErrPartialClose, e.Err)
}

func (e *PartialCloseError) Unwrap() []error {
	return []error{ErrPartialClose, e.Err}
}
