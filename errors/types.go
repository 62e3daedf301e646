package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure so the CLI can pick a message and exit path.
type ErrorCode string

const (
	// Loading and validating numwidget.yml
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Names given on the command line or in the demo section
	ErrCodeUnknownScene ErrorCode = "UNKNOWN_SCENE"
	ErrCodeUnknownAlign ErrorCode = "UNKNOWN_ALIGN"

	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// NumError is the error type returned across numwidget packages. Details
// holds the values the CLI error handler prints as hints (the offending
// path, scene or alignment and the accepted alternatives).
type NumError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *NumError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
}

func (e *NumError) Unwrap() error { return e.Cause }

// WithDetail records key on e and returns e so constructors can chain calls.
func (e *NumError) WithDetail(key string, value interface{}) *NumError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// ToJSON is the indented form shown by --verbose.
func (e *NumError) ToJSON() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Sprintf("{%q: %q}", "code", e.Code)
	}
	return string(data)
}

func New(code ErrorCode, message string) *NumError {
	return &NumError{Code: code, Message: message}
}

// Wrap attaches code and message to cause. The cause stays reachable through
// Unwrap, so both Is and the standard library see it.
func Wrap(cause error, code ErrorCode, message string) *NumError {
	return &NumError{Code: code, Message: message, Cause: cause}
}

// As finds the outermost NumError in err's chain.
func As(err error) (*NumError, bool) {
	var numErr *NumError
	if stderrors.As(err, &numErr) {
		return numErr, true
	}
	return nil, false
}

// Is reports whether any NumError in err's chain carries code. A wrapping
// UNKNOWN_SCENE around a CONFIG_NOT_FOUND matches both.
func Is(err error, code ErrorCode) bool {
	for {
		numErr, ok := As(err)
		if !ok {
			return false
		}
		if numErr.Code == code {
			return true
		}
		err = numErr.Cause
	}
}

// GetCode returns the outermost code in err's chain, or "" for foreign errors.
func GetCode(err error) ErrorCode {
	if numErr, ok := As(err); ok {
		return numErr.Code
	}
	return ""
}
