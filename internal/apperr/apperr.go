// Package apperr defines the operational error type threaded from business
// logic to the HTTP boundary. An Error carries the status code the response
// should use and, for validation failures, the structured field errors;
// everything else about turning it into a response body belongs to the API
// layer.
package apperr

import (
	"net/http"

	"github.com/azmath1924/go-rest-starter/internal/validation"
)

// Error is an anticipated failure: not found, conflict, bad input. It is
// constructed at the point the condition is detected and consumed exactly
// once by the API layer's error responder.
//
// Operational distinguishes expected business outcomes from defects. Errors
// built through this package are operational; anything else reaching the
// responder is treated as a defect and reported generically.
type Error struct {
	Message     string
	StatusCode  int
	Operational bool
	Fields      []validation.FieldError
}

// Error implements the error interface with the client-safe message.
func (e *Error) Error() string { return e.Message }

// New creates an operational error with the given status code. A zero status
// code defaults to 500.
func New(message string, statusCode int) *Error {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &Error{
		Message:     message,
		StatusCode:  statusCode,
		Operational: true,
	}
}

// BadRequest creates a 400 error for malformed input.
func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

// Conflict creates a 409 error for uniqueness violations.
func Conflict(message string) *Error {
	return New(message, http.StatusConflict)
}

// Validation creates a 400 error carrying the full list of field violations.
func Validation(fields []validation.FieldError) *Error {
	err := New("Validation failed", http.StatusBadRequest)
	err.Fields = fields
	return err
}
