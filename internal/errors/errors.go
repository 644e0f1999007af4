package errors

import (
	"errors"
	"fmt"
)

// AppError represents an application-specific error
type AppError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Cause     error  `json:"-"`
	Operation string `json:"operation,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithOperation adds operation context to the error
func (e *AppError) WithOperation(operation string) *AppError {
	e.Operation = operation
	return e
}

// WithDetails adds additional details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Common error codes
const (
	ErrCodeValidationError    = "VALIDATION_ERROR"
	ErrCodeScoringUnavailable = "SCORING_UNAVAILABLE"
	ErrCodeConfigurationError = "CONFIGURATION_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Common error constructors
func ValidationError(message string, cause error) *AppError {
	return NewAppError(ErrCodeValidationError, message, cause)
}

func ScoringUnavailable(message string, cause error) *AppError {
	return NewAppError(ErrCodeScoringUnavailable, message, cause)
}

func ConfigurationError(message string, cause error) *AppError {
	return NewAppError(ErrCodeConfigurationError, message, cause)
}

func InternalError(message string, cause error) *AppError {
	return NewAppError(ErrCodeInternalError, message, cause)
}

// CodeOf returns the application error code for err, or INTERNAL_ERROR
// when err is not an AppError
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidationError
}

// IsScoringUnavailable reports whether err indicates the scoring capability failed
func IsScoringUnavailable(err error) bool {
	return CodeOf(err) == ErrCodeScoringUnavailable
}

// AsAppError returns err as an *AppError, wrapping it as an internal error
// when it is not one. Caller-facing paths use this so raw errors never leak.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError("internal server error", err)
}

// UserMessage returns the stable caller-facing message for err
func UserMessage(err error) string {
	return AsAppError(err).Message
}
