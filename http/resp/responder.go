package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/logger"
)

// Responder writes structured data as an HTTP response,
// logging failures with the *req.Request facade of the request being answered.
//
// Most oftentimes, a single Responder suffices for an application.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder logging with l.
// If l is nil, a default *logger.RexLogger is used.
func NewResponder(l logger.Logger) *Responder {
	if l == nil {
		l = logger.New()
	}

	return &Responder{
		logger: l,
		pool:   &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
}

type jsonSchema struct {
	D any    `json:"data,omitempty"`
	E string `json:"error,omitempty"`
}

// Json responds with data in JSON format under a "data" key:
//
//	{
//		"data": {}
//	}
//
// If code is 0, 200 OK is used.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, data any, code int) error {
	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrDone, err)
	}

	if code == 0 {
		code = http.StatusOK
	}

	return doer.write(w, r, jsonSchema{D: data}, code)
}

// Err responds with err in JSON format under an "error" key,
// with the status rex.StatusCode maps err to.
//
// Server errors are logged at ERROR, client errors at WARN.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	code := rex.StatusCode(err)

	lc := &logger.LogContext{Error: err}
	if rr, ok := req.FromContext(r.Context()); ok {
		lc.Request = rr
	}

	msg := http.StatusText(code)
	if code >= http.StatusInternalServerError {
		doer.logger.Error(err.Error(), lc)
	} else {
		doer.logger.Warn(err.Error(), lc)
		msg = err.Error()
	}

	if werr := doer.write(w, r, jsonSchema{E: msg}, code); werr != nil {
		doer.logger.Error(werr.Error(), lc)
	}
}

func (doer *Responder) write(w http.ResponseWriter, r *http.Request, payload jsonSchema, code int) error {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("%w: cannot encode response: %s", rex.ErrUnexpected, err)
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}
