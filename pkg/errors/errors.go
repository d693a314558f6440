// Package errors provides structured errors with stable codes for rulebook.
// Errors fall into two families: load errors, which abort store construction
// entirely, and resolution errors, which abort a single compose query while
// leaving the store usable.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Load errors: store construction failed, no partial store exists
	ErrLoad          ErrorCode = "LOAD"
	ErrParse         ErrorCode = "PARSE"
	ErrDuplicateName ErrorCode = "DUPLICATE_NAME"

	// Resolution errors: one query failed, store remains valid
	ErrResolution       ErrorCode = "RESOLUTION"
	ErrMissingReference ErrorCode = "MISSING_REFERENCE"
	ErrCycle            ErrorCode = "CYCLE"
)

// RulebookError represents a structured error with code and details
type RulebookError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RulebookError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RulebookError) Unwrap() error {
	return e.Wrapped
}

// Is matches two RulebookErrors by code
func (e *RulebookError) Is(target error) bool {
	var targetErr *RulebookError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RulebookError with the given code and message
func New(code ErrorCode, message string) *RulebookError {
	return &RulebookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RulebookError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RulebookError {
	return &RulebookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RulebookError
func Wrap(err error, code ErrorCode, message string) *RulebookError {
	if err == nil {
		return nil
	}
	return &RulebookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RulebookError {
	if err == nil {
		return nil
	}
	return &RulebookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RulebookError) WithDetail(key string, value interface{}) *RulebookError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Rule returns the offending rule name, if the error carries one.
func (e *RulebookError) Rule() string {
	if name, ok := e.Details["rule"].(string); ok {
		return name
	}
	return ""
}

// CyclePath returns the ordered cycle path for ErrCycle errors: the list of
// rule names from the start of the cycle back to itself.
func (e *RulebookError) CyclePath() []string {
	if path, ok := e.Details["cycle"].([]string); ok {
		return path
	}
	return nil
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rbErr *RulebookError
	if errors.As(err, &rbErr) {
		return rbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a
// RulebookError
func GetErrorCode(err error) ErrorCode {
	var rbErr *RulebookError
	if errors.As(err, &rbErr) {
		return rbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a
// RulebookError
func GetErrorDetails(err error) map[string]interface{} {
	var rbErr *RulebookError
	if errors.As(err, &rbErr) {
		return rbErr.Details
	}
	return nil
}

// IsLoadError reports whether err belongs to the load family. Load errors
// mean no store was constructed.
func IsLoadError(err error) bool {
	switch GetErrorCode(err) {
	case ErrLoad, ErrParse, ErrDuplicateName:
		return true
	}
	return false
}

// IsReferenceError reports whether err belongs to the reference family,
// the resolution errors caused by the reference graph itself.
func IsReferenceError(err error) bool {
	switch GetErrorCode(err) {
	case ErrMissingReference, ErrCycle:
		return true
	}
	return false
}

// IsResolutionError reports whether err belongs to the resolution family.
// Resolution errors abort only the query that triggered them.
func IsResolutionError(err error) bool {
	return GetErrorCode(err) == ErrResolution || IsReferenceError(err)
}
