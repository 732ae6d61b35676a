package devserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInput    = errors.New("invalid input")
	errUnauthenticated = errors.New("not logged in")
	errForbidden       = errors.New("forbidden")
	errNotFound        = errors.New("not found")
	errConflict        = errors.New("conflict")
	errSessionUnknown  = errors.New("unknown or expired session")
)

// statusSessionExpired mirrors the status the client maps to a re-handshake.
const statusSessionExpired = 419

// httpError pairs a user-facing message with one of the kinds above.
type httpError struct {
	kind error
	msg  string
}

func (e *httpError) Error() string { return e.msg }
func (e *httpError) Unwrap() error { return e.kind }

func fail(kind error, format string, args ...any) error {
	return &httpError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// mapErrorToHTTPStatus maps error kinds to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, errInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, errConflict):
		return http.StatusConflict
	case errors.Is(err, errSessionUnknown):
		return statusSessionExpired
	default:
		return http.StatusInternalServerError
	}
}

// envelope is the response wrapper.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respondJSON sends a success envelope.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, envelope{Status: "success", Data: data})
}

// respondError sends an error envelope with the mapped status code.
func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(mapErrorToHTTPStatus(err), envelope{Status: "error", Message: err.Error()})
}
