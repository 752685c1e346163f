package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes. Setup/teardown codes mean the test infrastructure itself
// broke; validation codes mean an expectation about a fixture or project
// file was not met.
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Fixture setup/teardown errors
	ErrFixtureSetup    ErrorCode = "FIXTURE_SETUP"
	ErrFixtureTeardown ErrorCode = "FIXTURE_TEARDOWN"
	ErrDirCreate       ErrorCode = "DIR_CREATE"
	ErrFileCreate      ErrorCode = "FILE_CREATE"
	ErrFileWrite       ErrorCode = "FILE_WRITE"
	ErrEnvRestore      ErrorCode = "ENV_RESTORE"
	ErrConfigLoad      ErrorCode = "CONFIG_LOAD"
	ErrFileAccess      ErrorCode = "FILE_ACCESS"

	// Validation errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrMarkerMissing ErrorCode = "MARKER_MISSING"
	ErrLayoutInvalid ErrorCode = "LAYOUT_INVALID"
)

// TestkitError represents a structured error with code and details
type TestkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TestkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TestkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TestkitError) Is(target error) bool {
	var targetErr *TestkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TestkitError with the given code and message
func New(code ErrorCode, message string) *TestkitError {
	return &TestkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TestkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TestkitError {
	return &TestkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TestkitError
func Wrap(err error, code ErrorCode, message string) *TestkitError {
	if err == nil {
		return nil
	}
	return &TestkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TestkitError {
	if err == nil {
		return nil
	}
	return &TestkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TestkitError) WithDetail(key string, value interface{}) *TestkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tkErr *TestkitError
	if errors.As(err, &tkErr) {
		return tkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TestkitError
func GetErrorCode(err error) ErrorCode {
	var tkErr *TestkitError
	if errors.As(err, &tkErr) {
		return tkErr.Code
	}
	return ErrUnknown
}

// IsSetupError reports whether the error belongs to the fixture
// setup/teardown family, as opposed to a failed expectation.
func IsSetupError(err error) bool {
	switch GetErrorCode(err) {
	case ErrFixtureSetup, ErrFixtureTeardown, ErrDirCreate, ErrFileCreate,
		ErrFileWrite, ErrEnvRestore, ErrConfigLoad, ErrFileAccess:
		return true
	}
	return false
}
