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

	// Sink errors
	ErrSinkFailure ErrorCode = "SINK_FAILURE"
	ErrSinkClosed  ErrorCode = "SINK_CLOSED"

	// Encoding errors
	ErrEncodingViolation ErrorCode = "ENCODING_VIOLATION"

	// Style errors
	ErrStyleApply  ErrorCode = "STYLE_APPLY"
	ErrStyleRevert ErrorCode = "STYLE_REVERT"

	// Layout errors
	ErrBorderUnknown ErrorCode = "BORDER_UNKNOWN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Device errors
	ErrDeviceOpen  ErrorCode = "DEVICE_OPEN"
	ErrDeviceWrite ErrorCode = "DEVICE_WRITE"
)

// WriterError represents a structured error with code and details
type WriterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WriterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WriterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WriterError) Is(target error) bool {
	var targetErr *WriterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WriterError with the given code and message
func New(code ErrorCode, message string) *WriterError {
	return &WriterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WriterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WriterError {
	return &WriterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WriterError
func Wrap(err error, code ErrorCode, message string) *WriterError {
	if err == nil {
		return nil
	}
	return &WriterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WriterError {
	if err == nil {
		return nil
	}
	return &WriterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WriterError) WithDetail(key string, value interface{}) *WriterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var writerErr *WriterError
	if errors.As(err, &writerErr) {
		return writerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WriterError
func GetErrorCode(err error) ErrorCode {
	var writerErr *WriterError
	if errors.As(err, &writerErr) {
		return writerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WriterError
func GetErrorDetails(err error) map[string]interface{} {
	var writerErr *WriterError
	if errors.As(err, &writerErr) {
		return writerErr.Details
	}
	return nil
}
