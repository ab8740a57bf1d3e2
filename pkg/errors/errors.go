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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Path resolution errors
	ErrUnresolvedVar ErrorCode = "UNRESOLVED_VAR"

	// Install errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrInstallFailed  ErrorCode = "INSTALL_FAILED"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrCommandStart   ErrorCode = "COMMAND_START"

	// Overlay errors
	ErrOverlaySource     ErrorCode = "OVERLAY_SOURCE"
	ErrOverlayIncomplete ErrorCode = "OVERLAY_INCOMPLETE"
	ErrHookFailed        ErrorCode = "HOOK_FAILED"
)

// HelperError represents a structured error with code and details
type HelperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HelperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HelperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HelperError) Is(target error) bool {
	var targetErr *HelperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HelperError with the given code and message
func New(code ErrorCode, message string) *HelperError {
	return &HelperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HelperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HelperError {
	return &HelperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HelperError
func Wrap(err error, code ErrorCode, message string) *HelperError {
	if err == nil {
		return nil
	}
	return &HelperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HelperError {
	if err == nil {
		return nil
	}
	return &HelperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HelperError) WithDetail(key string, value interface{}) *HelperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var helperErr *HelperError
	if errors.As(err, &helperErr) {
		return helperErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HelperError
func GetErrorCode(err error) ErrorCode {
	var helperErr *HelperError
	if errors.As(err, &helperErr) {
		return helperErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HelperError
func GetErrorDetails(err error) map[string]interface{} {
	var helperErr *HelperError
	if errors.As(err, &helperErr) {
		return helperErr.Details
	}
	return nil
}
