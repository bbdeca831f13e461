// Package apperrors provides the error taxonomy surfaced at the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind identifies a class of recoverable, user-visible failure.
type Kind string

const (
	KindInvalidInput         Kind = "INVALID_INPUT"
	KindValidationFailure    Kind = "VALIDATION_FAILURE"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindResourceFetchFailure Kind = "RESOURCE_FETCH_FAILURE"
	KindNotFound             Kind = "NOT_FOUND"
)

// Error is a structured application error.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindInvalidInput:
		return fiber.StatusUnprocessableEntity
	case KindValidationFailure:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindResourceFetchFailure:
		return fiber.StatusBadGateway
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// InvalidInput reports a value outside its field's enumerated domain.
func InvalidInput(field, value string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("%q is not a valid value for %s", value, field),
		Field:   field,
	}
}

func ValidationFailure(message string) *Error {
	return &Error{Kind: KindValidationFailure, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// ResourceFetchFailure wraps a failed or non-2xx fetch of a posting reference.
func ResourceFetchFailure(url string, err error) *Error {
	return &Error{
		Kind:    KindResourceFetchFailure,
		Message: fmt.Sprintf("failed to fetch %s", url),
		Err:     err,
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
