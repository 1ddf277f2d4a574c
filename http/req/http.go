package req

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/valyala/fasthttp"
	"github.com/xy-planning-network/rex"
)

// FromHTTP constructs a *Request out of the *http.Request the net/http server parsed.
//
// FromHTTP reads all of r.Body and replaces it with a fresh reader over the same bytes,
// so r.Body can be read again by the handler.
func FromHTTP(r *http.Request, opts ...Option) (*Request, error) {
	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		b, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("rex/http/req: %w: failed reading request body: %w", rex.ErrBadRequest, err)
		}

		if len(b) > 0 {
			body = b
		}

		r.Body = io.NopCloser(bytes.NewReader(b))
	}

	// NOTE: RequestURI may be in absolute form, e.g., "https://example.com/foo",
	// for requests sent to a proxy.
	target := r.RequestURI
	if !strings.HasPrefix(target, "/") {
		target = r.URL.RequestURI()
	}

	// NOTE: net/http promotes Host out of r.Header and into r.Host.
	base := []Option{WithBody(body), WithHeaders(r.Header)}
	if _, ok := r.Header[hostHeader]; !ok && r.Host != "" {
		base = append(base, WithHeader(hostHeader, r.Host))
	}

	return New(r.Method, target, append(base, opts...)...), nil
}

// FromFastHTTP constructs a *Request out of the request fasthttp parsed.
//
// Headers are added in the order fasthttp received them.
// The body is copied, since fasthttp reuses its buffers once the handler returns.
func FromFastHTTP(ctx *fasthttp.RequestCtx, opts ...Option) *Request {
	var base []Option
	ctx.Request.Header.VisitAll(func(k, v []byte) {
		base = append(base, WithHeader(string(k), string(v)))
	})

	if body := ctx.PostBody(); len(body) > 0 {
		base = append(base, WithBody(append([]byte(nil), body...)))
	}

	return New(string(ctx.Method()), string(ctx.RequestURI()), append(base, opts...)...)
}

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, rex.RequestKey, r)
}

// FromContext retrieves the *Request stashed in ctx by NewContext.
func FromContext(ctx context.Context) (*Request, bool) {
	r, ok := ctx.Value(rex.RequestKey).(*Request)
	return r, ok && r != nil
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
