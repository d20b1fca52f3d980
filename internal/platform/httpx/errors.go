// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer. Handlers and repositories wrap
// these so the boundary mapping happens exactly once, in RespondError.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// The detail strings are fixed per error kind; nothing from the
// underlying error text crosses the boundary.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", ErrNotFound.Error())
	case errors.Is(err, ErrEmailTaken):
		Problem(w, http.StatusForbidden, "Forbidden", "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		Problem(w, http.StatusForbidden, "Forbidden", "Invalid credentials")
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", ErrValidation.Error())
	case errors.Is(err, ErrUnauthenticated):
		Problem(w, http.StatusUnauthorized, "Unauthorized", ErrUnauthenticated.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// IsClientError reports whether err maps to a 4xx response, so callers
// can keep server faults out of their error logs.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnauthenticated)
}
