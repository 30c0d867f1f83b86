package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Binding and dispatch errors
	ErrBindingInvalid  ErrorCode = "BINDING_INVALID"
	ErrModeUnknown     ErrorCode = "MODE_UNKNOWN"
	ErrGroupInvalid    ErrorCode = "GROUP_INVALID"
	ErrRemovalMismatch ErrorCode = "REMOVAL_MISMATCH"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// External tool errors
	ErrFormatterFailed ErrorCode = "FORMATTER_FAILED"
)

// ItergenError represents a structured error with code and details
type ItergenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ItergenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ItergenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ItergenError) Is(target error) bool {
	var targetErr *ItergenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ItergenError with the given code and message
func New(code ErrorCode, message string) *ItergenError {
	return &ItergenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ItergenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ItergenError {
	return &ItergenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ItergenError
func Wrap(err error, code ErrorCode, message string) *ItergenError {
	if err == nil {
		return nil
	}
	return &ItergenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ItergenError {
	if err == nil {
		return nil
	}
	return &ItergenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ItergenError) WithDetail(key string, value interface{}) *ItergenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var itergenErr *ItergenError
	if errors.As(err, &itergenErr) {
		return itergenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ItergenError
func GetErrorCode(err error) ErrorCode {
	var itergenErr *ItergenError
	if errors.As(err, &itergenErr) {
		return itergenErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ItergenError
func GetErrorDetails(err error) map[string]interface{} {
	var itergenErr *ItergenError
	if errors.As(err, &itergenErr) {
		return itergenErr.Details
	}
	return nil
}
