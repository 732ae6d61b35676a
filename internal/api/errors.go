package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned for HTTP 401: missing or stale login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for HTTP 403: the role may not do this.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for HTTP 409: the state forbids the transition.
	ErrConflict = errors.New("conflict")

	// ErrSessionExpired is returned for HTTP 419: the server no longer knows
	// the session id used for an encrypted request.
	ErrSessionExpired = errors.New("encryption session expired")

	// ErrRejected is returned for a 2xx response whose envelope is not a success.
	ErrRejected = errors.New("request rejected")

	// ErrBadResponse is returned when a response cannot be decoded.
	ErrBadResponse = errors.New("malformed response")

	// ErrNoSession is returned when an encrypted call is attempted without a handshake.
	ErrNoSession = errors.New("no encryption session")
)

// StatusSessionExpired is the non-standard status the backend uses for an
// unknown or expired X-Session-ID.
const StatusSessionExpired = 419

// APIError is a failed backend call.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

// Error puts the backend's message first; it is what the user should read.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Sprintf("%s (%s %s: HTTP %d)", msg, e.Method, e.Path, e.StatusCode)
}

// Unwrap maps the status to a package sentinel.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode == StatusSessionExpired:
		return ErrSessionExpired
	case e.StatusCode/100 == 2:
		return ErrRejected
	default:
		return nil
	}
}
