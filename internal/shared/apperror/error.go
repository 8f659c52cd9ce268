// Package apperror carries an HTTP status and a client-safe message alongside an error.
package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that knows how it should be rendered to the client.
type AppError struct {
	Code    int
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports a rejected request body together with per-field messages.
func Validation(err error, details []string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: "invalid request", Details: details, Err: err}
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string, err error) *AppError {
	return New(http.StatusConflict, message, err)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
