package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the status codes the client gives special meaning.
// Match with errors.Is; the concrete *StatusError carries the body.
var (
	// ErrUnauthorized is a 401: bad credentials on auth endpoints, an
	// expired access token elsewhere
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountLocked is a 423: the account is deactivated or banned
	ErrAccountLocked = errors.New("account locked")

	// ErrNotFound is a 404
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-2xx response from the backend
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// Is maps known status codes to their sentinels
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrAccountLocked:
		return e.Code == http.StatusLocked
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}
