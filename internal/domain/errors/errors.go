// Package errors defines the errors the use cases return and how each one is
// presented to API clients.
package errors

import (
	"net/http"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// AppError is an error with a client facing status, code and message.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a sentinel AppError. Wrap it with WrapMessage to add context
// while keeping errors.Is and errors.As working.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string { return e.message }

func (e *BaseError) WrapMessage(message string) error { return errors.Wrap(e, message) }

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// ValidationError reports every missing or invalid input field at once.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError takes a field name to reason map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewMissingFieldsError marks each named field as required.
func NewMissingFieldsError(names []string) *ValidationError {
	fields := make(map[string]string, len(names))
	for _, name := range names {
		fields[name] = "required"
	}

	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	slices.Sort(names)

	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }

func (e *ValidationError) ErrorCode() string { return errValidationFailed.ErrorCode() }

func (e *ValidationError) Message() string { return errValidationFailed.Message() }

func (e *ValidationError) Details() string { return e.Error() }

func (e *ValidationError) Fields() map[string]string { return e.fields }

// DatabaseExecuteError hides a driver failure behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }

func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }

func (e *DatabaseExecuteError) Message() string { return "Database execution failed" }

func (e *DatabaseExecuteError) Details() string { return e.details }
