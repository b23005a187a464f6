package apperr

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when an operation is attempted by an actor that
// does not own the resource or lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ValidationError blocks an operation before any write is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError with a formatted message.
func Validation(format string, v ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, v...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a read or write rejected by the backing store.
// Callers must leave prior in-memory state untouched when they receive one.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the named operation.
func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
