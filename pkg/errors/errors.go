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

	// Script errors, one per failure class of the directive language
	ErrUnknownDirective ErrorCode = "UNKNOWN_DIRECTIVE"
	ErrUnknownEnumValue ErrorCode = "UNKNOWN_ENUM_VALUE"
	ErrMalformedNumber  ErrorCode = "MALFORMED_NUMBER"
	ErrMissingField     ErrorCode = "MISSING_FIELD"
	ErrMalformedLine    ErrorCode = "MALFORMED_LINE"

	// Layout errors reported by consumers of a parsed script
	ErrUnbalancedVisual ErrorCode = "UNBALANCED_VISUAL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Source errors
	ErrSourceRead   ErrorCode = "SOURCE_READ"
	ErrSourceDecode ErrorCode = "SOURCE_DECODE"

	// Output errors
	ErrRender ErrorCode = "RENDER"

	// ErrReported means the failure was already written to the output and
	// only the exit status is left to set
	ErrReported ErrorCode = "REPORTED"
)

// Detail keys used by the script error codes
const (
	DetailKeyword   = "keyword"
	DetailDirective = "directive"
	DetailField     = "field"
	DetailValue     = "value"
	DetailText      = "text"
	DetailExpected  = "expected"
	DetailActual    = "actual"
)

// ScriptError represents a structured error with code and details
type ScriptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScriptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScriptError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScriptError) Is(target error) bool {
	var targetErr *ScriptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScriptError with the given code and message
func New(code ErrorCode, message string) *ScriptError {
	return &ScriptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScriptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScriptError {
	return &ScriptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScriptError
func Wrap(err error, code ErrorCode, message string) *ScriptError {
	if err == nil {
		return nil
	}
	return &ScriptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScriptError {
	if err == nil {
		return nil
	}
	return &ScriptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScriptError) WithDetail(key string, value interface{}) *ScriptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ScriptError) WithDetails(details map[string]interface{}) *ScriptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scriptErr *ScriptError
	if errors.As(err, &scriptErr) {
		return scriptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScriptError
func GetErrorCode(err error) ErrorCode {
	var scriptErr *ScriptError
	if errors.As(err, &scriptErr) {
		return scriptErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScriptError
func GetErrorDetails(err error) map[string]interface{} {
	var scriptErr *ScriptError
	if errors.As(err, &scriptErr) {
		return scriptErr.Details
	}
	return nil
}
