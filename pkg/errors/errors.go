package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an error for HTTP mapping and logging.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeDatabase     ErrorType = "DATABASE"
	ErrorTypeExternal     ErrorType = "EXTERNAL"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError is the application error carried across layers. The Message is
// safe to show to callers; Cause is logged but never serialized.
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidationError reports malformed or contradictory input (400).
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewUnauthorizedError reports a missing or unverifiable principal (401).
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return &AppError{Type: ErrorTypeUnauthorized, Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewForbiddenError reports a relationship-gate denial (403).
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{Type: ErrorTypeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

// NewNotFoundError reports a missing resource (404).
func NewNotFoundError(resource string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: fmt.Sprintf("%s not found", resource), HTTPStatus: http.StatusNotFound}
}

// NewDatabaseError reports a row-store failure (500).
func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDatabase, Message: message, Cause: cause, HTTPStatus: http.StatusInternalServerError}
}

// NewExternalError reports a failure in an external collaborator (500).
func NewExternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeExternal, Message: message, Cause: cause, HTTPStatus: http.StatusInternalServerError}
}

// NewInternalError reports an unexpected failure (500).
func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: cause, HTTPStatus: http.StatusInternalServerError}
}

// Status returns the HTTP status for err, defaulting to 500.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Detail returns the caller-visible reason for err. Unexpected errors get
// a generic message so internals never leak into responses.
func Detail(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeNotFound
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeValidation
}
