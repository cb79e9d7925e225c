package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure inside the server.
var ErrInternal = errors.New("internal error")

// APIError is an error tagged with the HTTP status code and the message
// that should reach the client. It wraps one of the sentinel kinds above
// so callers can still branch with errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// NewValidation returns a 400 APIError.
func NewValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, kind: ErrValidation}
}

// NewUnauthorized returns a 401 APIError.
func NewUnauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message, kind: ErrUnauthorized}
}

// NewNotFound returns a 404 APIError.
func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

// NewConflict returns a 409 APIError.
func NewConflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message, kind: ErrDuplicate}
}

// NewInternal returns a 500 APIError.
func NewInternal(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message, kind: ErrInternal}
}
