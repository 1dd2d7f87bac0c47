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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Dispatch errors
	ErrLoopLimitExceeded ErrorCode = "LOOP_LIMIT_EXCEEDED"
	ErrCallbackFailed    ErrorCode = "CALLBACK_FAILED"
	ErrCallbackPanic     ErrorCode = "CALLBACK_PANIC"
)

// FlowError represents a structured error with code and details
type FlowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FlowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FlowError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FlowError) Is(target error) bool {
	var targetErr *FlowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FlowError with the given code and message
func New(code ErrorCode, message string) *FlowError {
	return &FlowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FlowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FlowError {
	return &FlowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FlowError
func Wrap(err error, code ErrorCode, message string) *FlowError {
	if err == nil {
		return nil
	}
	return &FlowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FlowError {
	if err == nil {
		return nil
	}
	return &FlowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FlowError) WithDetail(key string, value interface{}) *FlowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FlowError
func GetErrorCode(err error) ErrorCode {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FlowError
func GetErrorDetails(err error) map[string]interface{} {
	var flowErr *FlowError
	if errors.As(err, &flowErr) {
		return flowErr.Details
	}
	return nil
}
