package rex

import (
	"errors"
	"net/http"
)

var (
	ErrBadConfig      = errors.New("bad config")
	ErrBadFormat      = errors.New("bad format")
	ErrBadRequest     = errors.New("bad request")
	ErrMissingData    = errors.New("missing data")
	ErrNotExist       = errors.New("not exist")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
)

// StatusCode maps err onto the HTTP status a handler ought to respond with.
//
// Client mistakes (ErrBadRequest, ErrBadFormat, ErrNotValid) become 400 Bad Request,
// ErrNotExist becomes 404 Not Found and everything else,
// including a nil error that should not have been passed in, becomes 500 Internal Server Error.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrBadFormat),
		errors.Is(err, ErrNotValid):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotExist):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
