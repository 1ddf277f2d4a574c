package resp

import "errors"

var (
	// ErrDone is returned when the request's context is done before a response could be written.
	ErrDone = errors.New("request ctx done")
)
