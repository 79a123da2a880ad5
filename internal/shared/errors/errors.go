package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates invalid input data
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeUnauthorized indicates authentication failure
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	// ErrorTypeForbidden indicates insufficient permissions
	ErrorTypeForbidden ErrorType = "forbidden"
	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeMethodNotAllowed indicates an unsupported HTTP method
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	// ErrorTypeExternal indicates an external service error
	ErrorTypeExternal ErrorType = "external"
	// ErrorTypeCancelled indicates the client gave up on the request
	ErrorTypeCancelled ErrorType = "cancelled"
)

// AppError is the base error type for application errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(errorType ErrorType, message string, err error) error {
	return &AppError{Type: errorType, Message: message, Err: err}
}

// NotFoundf creates a not found error with formatting
func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

// Validation creates a validation error
func Validation(message string) error {
	return newError(ErrorTypeValidation, message, nil)
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

// WrapValidation wraps an error as a validation error
func WrapValidation(message string, err error) error {
	return newError(ErrorTypeValidation, message, err)
}

// Conflictf creates a conflict error with formatting
func Conflictf(format string, args ...any) error {
	return newError(ErrorTypeConflict, fmt.Sprintf(format, args...), nil)
}

// WrapInternal wraps an error as an internal error. Context cancellation is
// reported as ErrorTypeCancelled so it is not logged as a server fault.
func WrapInternal(message string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrorTypeCancelled, message, err)
	}
	return newError(ErrorTypeInternal, message, err)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) error {
	return newError(ErrorTypeUnauthorized, message, nil)
}

// Forbidden creates a forbidden error
func Forbidden(message string) error {
	return newError(ErrorTypeForbidden, message, nil)
}

// MethodNotAllowed creates a method not allowed error
func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method), nil)
}

// External creates an external service error
func External(message string) error {
	return newError(ErrorTypeExternal, message, nil)
}

// WrapExternal wraps an error as an external service error
func WrapExternal(message string, err error) error {
	return newError(ErrorTypeExternal, message, err)
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errorType
}
