// Package errors provides structured error types for the maiar-audit tool.
//
// This package defines error codes and types that enable:
//   - Consistent classification of registry failures across the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly issue messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes map one-to-one onto the failure taxonomy of the audit:
//   - MISSING_FIELDS, INVALID_SUBMISSION: submission input problems
//   - NOT_FOUND, FORBIDDEN, UPSTREAM_ERROR: classified HTTP statuses
//   - RATE_LIMITED: GitHub rate limit exhausted
//   - MALFORMED_RESPONSE: body was not valid JSON
//   - NETWORK_ERROR: transport-level fault
//   - INTERNAL_ERROR: unexpected catch-all
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "repo %s/%s not found", owner, repo)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing resource
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Submission input errors
	ErrCodeMissingFields     Code = "MISSING_FIELDS"
	ErrCodeInvalidSubmission Code = "INVALID_SUBMISSION"

	// Classified HTTP statuses
	ErrCodeNotFound  Code = "NOT_FOUND"
	ErrCodeForbidden Code = "FORBIDDEN"
	ErrCodeUpstream  Code = "UPSTREAM_ERROR"

	// Rate limiting
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Response and transport errors
	ErrCodeMalformedResponse Code = "MALFORMED_RESPONSE"
	ErrCodeNetwork           Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// RateLimitError reports an exhausted GitHub rate limit, carrying the time
// the limit window resets.
type RateLimitError struct {
	ResetAt time.Time
}

// Error implements the error interface. The message is surfaced verbatim
// as an audit issue, so it must stand on its own.
func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "GitHub API rate limit exceeded"
	}
	return fmt.Sprintf("GitHub API rate limit exceeded. Resets at %s", e.ResetAt.Format(time.RFC1123))
}

// Code returns the error code for this error type.
func (e *RateLimitError) Code() Code {
	return ErrCodeRateLimited
}

// IsRateLimited reports whether err is a rate-limit failure.
func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
