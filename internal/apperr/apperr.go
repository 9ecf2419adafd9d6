package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers that need to branch on failure kind.
type Code string

const (
	CodeInvalid   Code = "INVALID"   // validation failure (name, path, limits)
	CodeNotFound  Code = "NOT_FOUND" // folder or file reference not present
	CodeIO        Code = "IO"        // document read/write/parse failure
	CodeIntegrity Code = "INTEGRITY" // clipboard modified outside the engine
)

// Error is a coded error carrying an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid creates a validation error.
func Invalid(msg string) *Error {
	return &Error{Code: CodeInvalid, Message: msg}
}

// Invalidf creates a validation error with a formatted message.
func Invalidf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalid, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// IO creates an I/O error wrapping the underlying cause.
func IO(msg string, err error) *Error {
	return &Error{Code: CodeIO, Message: msg, Err: err}
}

// Integrity creates an integrity error.
func Integrity(msg string) *Error {
	return &Error{Code: CodeIntegrity, Message: msg}
}

// CodeOf returns the code of err, or the empty string if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
