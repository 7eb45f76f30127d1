package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptStore matches errors for persisted sheets that cannot be decoded
	ErrCorruptStore = errors.New("corrupt sheet")

	// ErrPersistenceFailure matches errors for sheets that could not be written
	ErrPersistenceFailure = errors.New("failed to persist sheet")
)

// CorruptError is returned when the sheet file does not decode into a valid sheet
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("sheet %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCorruptStore
func (e *CorruptError) Is(target error) bool { return target == ErrCorruptStore }

// PersistError is returned when the sheet file cannot be written
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save sheet %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPersistenceFailure
func (e *PersistError) Is(target error) bool { return target == ErrPersistenceFailure }

// ParseError is returned when an edited export cannot be imported
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid sheet document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
