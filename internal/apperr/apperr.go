// Package apperr defines the error taxonomy surfaced to API callers. Every
// error carries an HTTP status and a human-readable detail string; handlers
// serialize them as {"detail": "..."}.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func New(status int, format string, args ...any) *Error {
	return &Error{Status: status, Detail: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

func Unauthenticated(format string, args ...any) *Error {
	return New(http.StatusUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return New(http.StatusForbidden, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(http.StatusConflict, format, args...)
}

// Status extracts the HTTP status for err, defaulting to 500 for anything
// outside the taxonomy.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
