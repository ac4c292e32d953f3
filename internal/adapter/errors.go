package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures that never produced an HTTP response.
	ErrTransport = errors.New("transport failure")

	ErrBroadcasterClosed    = errors.New("broadcaster is closed")
	ErrNoBroadcastTransport = errors.New("no broadcast transport available")
	ErrInvalidMessage       = errors.New("invalid sync message")
	ErrEmptyRefreshToken    = errors.New("refresh token is empty")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
	kind error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %s", e.Code, e.kind)
	}
	return fmt.Sprintf("http %d: %s: %s", e.Code, e.kind, e.Body)
}

// StatusCode returns the HTTP status of the failed response.
func (e *StatusError) StatusCode() int {
	return e.Code
}

func (e *StatusError) Unwrap() error {
	return e.kind
}
