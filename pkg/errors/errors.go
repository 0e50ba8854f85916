// Package errors provides structured error types for graphloom.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the builder
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input, settings or profile validation failures
//   - DUPLICATE_ID, UNKNOWN_*: Canonicalization failures raised by the builder
//   - NOT_FOUND, FILE_NOT_FOUND: Missing resources
//   - LAYOUT_FAILED, NETWORK_ERROR, TIMEOUT: External process and I/O failures
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "node %q has no name", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Builder failures carry the offending tokens
//	var unknown *errors.UnknownNodeError
//	if stderrors.As(err, &unknown) {
//	    fmt.Println(unknown.Token)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidSettings Code = "INVALID_SETTINGS"
	ErrCodeInvalidProfile  Code = "INVALID_PROFILE"
	ErrCodeInvalidCanvas   Code = "INVALID_CANVAS"

	// Canonicalization errors
	ErrCodeDuplicateID         Code = "DUPLICATE_ID"
	ErrCodeUnknownNode         Code = "UNKNOWN_NODE"
	ErrCodeUnknownLayoutOption Code = "UNKNOWN_LAYOUT_OPTION"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// External process and network errors
	ErrCodeLayoutFailed Code = "LAYOUT_FAILED"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeTimeout      Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// coder is implemented by the typed errors in this package.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// The outermost *Error or typed error in the chain decides.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// =============================================================================
// Canonicalization Errors
// =============================================================================

// DuplicateIDError reports two nodes in one scope that sanitize to the same id.
type DuplicateIDError struct {
	ID     string // Canonical id both nodes map to
	Source string // Label or id override that produced the second registration
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("Duplicate node id '%s' derived from '%s'", e.ID, e.Source)
}

// Code returns the error code for this error type.
func (e *DuplicateIDError) Code() Code { return ErrCodeDuplicateID }

// UnknownNodeError reports an edge endpoint naming a node that is not
// registered in its scope while auto-creation is disabled.
type UnknownNodeError struct {
	Token string // Literal endpoint node token
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("Unknown node '%s' referenced by edge", e.Token)
}

// Code returns the error code for this error type.
func (e *UnknownNodeError) Code() Code { return ErrCodeUnknownNode }

// UnknownLayoutOptionError reports layout option keys that are not
// recognized ELK option identifiers.
type UnknownLayoutOptionError struct {
	Keys []string // Offending keys, sorted
}

// Error implements the error interface.
func (e *UnknownLayoutOptionError) Error() string {
	return "Unknown layout option identifiers: " + strings.Join(e.Keys, ", ")
}

// Code returns the error code for this error type.
func (e *UnknownLayoutOptionError) Code() Code { return ErrCodeUnknownLayoutOption }
