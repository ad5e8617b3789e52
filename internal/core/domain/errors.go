package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// UnreachableMessage is the toast shown when a request never reached the server.
const UnreachableMessage = "Connection Refused: Server is unreachable"

var (
	ErrServerUnreachable  = errors.New("server is unreachable")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
)

// APIError is returned for every non-2xx response. Message is the normalized
// detail that was also shown as a toast.
type APIError struct {
	Status  int
	Message string
	Detail  ErrorDetail
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the response invalidated the session.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// NetworkError is returned when no HTTP response was received at all. It
// matches ErrServerUnreachable and unwraps to the transport failure.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, UnreachableMessage, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrServerUnreachable, e.Err}
}

// StatusCode returns the HTTP status carried by err, if any. Network failures
// carry none.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}
