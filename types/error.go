// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the library.
type ErrorCode string

// Configuration error codes. All of these are raised at construction time,
// never during iteration.
const (
	ErrEmptyPool          ErrorCode = "EMPTY_POOL"
	ErrWeightLength       ErrorCode = "WEIGHT_LENGTH_MISMATCH"
	ErrNoPositiveWeight   ErrorCode = "NO_POSITIVE_WEIGHT"
	ErrNegativeWeight     ErrorCode = "NEGATIVE_WEIGHT"
	ErrInvalidMode        ErrorCode = "INVALID_MODE"
	ErrInvalidRandomState ErrorCode = "INVALID_RANDOM_STATE"
	ErrInvalidSlotCount   ErrorCode = "INVALID_SLOT_COUNT"
	ErrInvalidRate        ErrorCode = "INVALID_RATE"
	ErrInvalidConfig      ErrorCode = "INVALID_CONFIG"
)

// Error represents a structured error with code, message, and cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// GetErrorCode extracts the error code from an error, unwrapping as needed.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
