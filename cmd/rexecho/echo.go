package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/valyala/fasthttp"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/http/resp"
	"github.com/xy-planning-network/rex/logger"
)

// An echo is the view of a request the *req.Request facade offers.
type echo struct {
	BaseURL         string              `json:"baseUrl"`
	EffectiveMethod string              `json:"effectiveMethod"`
	Form            url.Values          `json:"form,omitempty"`
	Headers         map[string][]string `json:"headers"`
	Method          string              `json:"method"`
	Path            string              `json:"path"`
	Query           map[string]string   `json:"query"`
	URL             string              `json:"url"`
}

func newEcho(r *req.Request) echo {
	e := echo{
		BaseURL:         r.BaseURL(),
		EffectiveMethod: r.EffectiveHTTPMethod(),
		Headers:         make(map[string][]string),
		Method:          r.HTTPMethod(),
		Path:            r.Path(),
		Query:           r.QueryStringMap(),
		URL:             r.URL(),
	}

	for _, name := range r.HeaderNames() {
		e.Headers[name] = r.Headers(name)
	}

	if form := r.BodyFromURLFormEncoded(); len(form) > 0 {
		e.Form = form
	}

	return e
}

// greeting is what /greet expects, from either the query or a form body.
type greeting struct {
	Lang string `schema:"lang" validate:"omitempty,oneof=en es"`
	Name string `schema:"name" validate:"required"`
}

type handler struct {
	*resp.Responder
}

// echo responds with the facade's view of the request.
func (h handler) echo(w http.ResponseWriter, r *http.Request) {
	rr, ok := req.FromContext(r.Context())
	if !ok {
		h.Err(w, r, fmt.Errorf("%w: no *req.Request in ctx", rex.ErrUnexpected))
		return
	}

	h.Json(w, r, newEcho(rr), http.StatusOK)
}

// greet decodes a greeting from the request's parameters.
func (h handler) greet(w http.ResponseWriter, r *http.Request) {
	rr, ok := req.FromContext(r.Context())
	if !ok {
		h.Err(w, r, fmt.Errorf("%w: no *req.Request in ctx", rex.ErrUnexpected))
		return
	}

	var g greeting
	if err := rr.DecodeParams(&g); err != nil {
		h.Err(w, r, err)
		return
	}

	hello := "hello, "
	if g.Lang == "es" {
		hello = "hola, "
	}

	h.Json(w, r, map[string]string{"greeting": hello + g.Name}, http.StatusOK)
}

// fastEcho is echo for requests fasthttp serves.
func fastEcho(l logger.Logger, opts ...req.Option) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		rr := req.FromFastHTTP(ctx, opts...)

		b, err := json.Marshal(map[string]any{"data": newEcho(rr)})
		if err != nil {
			l.Error(err.Error(), &logger.LogContext{Error: err, Request: rr})
			ctx.Error(http.StatusText(http.StatusInternalServerError), fasthttp.StatusInternalServerError)
			return
		}

		ctx.SetContentType("application/json; charset=UTF-8")
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBody(append(b, '\n'))
	}
}
