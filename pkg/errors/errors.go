// Package errors provides structured error types for the flashcard pipeline.
//
// Every failure in the pipeline is fatal (this is a batch generator, not a
// service), but callers still need to tell failure classes apart — a missing
// clef background asks for a different fix than a label that does not fit
// its card. Error codes make that distinction machine-readable:
//
//	err := errors.New(errors.ErrCodeLayoutOverflow, "%d cards exceed %d slots", n, cap)
//	if errors.Is(err, errors.ErrCodeLayoutOverflow) {
//	    // grid too small
//	}
//
//	// Wrap underlying os/image errors with context
//	err := errors.Wrap(errors.ErrCodeMissingAsset, origErr, "loading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure classes of the pipeline.
const (
	// ErrCodeMissingAsset means a clef background image is absent or unreadable.
	ErrCodeMissingAsset Code = "MISSING_ASSET"

	// ErrCodeLayoutOverflow means more cards than grid slots, or text that does
	// not fit its half-card bounds at the minimum font size.
	ErrCodeLayoutOverflow Code = "LAYOUT_OVERFLOW"

	// ErrCodeInvalidNoteSpec means a note's stave offset falls outside the
	// renderable canvas at the configured resolution.
	ErrCodeInvalidNoteSpec Code = "INVALID_NOTE_SPEC"

	// ErrCodeWriteFailure means the output file could not be written.
	ErrCodeWriteFailure Code = "WRITE_FAILURE"

	// ErrCodeInvalidConfig means the configuration failed validation before
	// the pipeline started.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
