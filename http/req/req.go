package req

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/rex/http/header"
	"github.com/xy-planning-network/rex/http/param"
)

const (
	// DefaultScheme is the scheme BaseURL reports unless WithScheme says otherwise.
	DefaultScheme = "https"

	hostHeader        = "Host"
	contentTypeHeader = "Content-Type"
)

// A Request is the parsed view of a single incoming HTTP request.
//
// A Request is not safe for concurrent use;
// each incoming request gets its own.
type Request struct {
	method string
	target string
	scheme string
	body   []byte

	headers header.Store
	query   param.Params

	// form caches ParseForm results, indexed by whether they were decoded
	form [2]url.Values
}

// An Option configures a *Request while New constructs it.
type Option func(*Request)

// WithBody sets the raw body of the request.
// The Request assumes b does not change afterwards.
func WithBody(b []byte) Option {
	return func(r *Request) {
		r.body = b
	}
}

// WithHeader adds a transport header.
func WithHeader(name, value string) Option {
	return func(r *Request) {
		r.headers.Add(name, value)
	}
}

// WithHeaders adds every value in h.
// Names are added in sorted order since an http.Header does not keep the order they arrived in.
func WithHeaders(h http.Header) Option {
	return func(r *Request) {
		for _, name := range sortedKeys(h) {
			for _, value := range h[name] {
				r.headers.Add(name, value)
			}
		}
	}
}

// WithScheme overrides DefaultScheme in the URL the Request reports.
func WithScheme(scheme string) Option {
	return func(r *Request) {
		if scheme != "" {
			r.scheme = scheme
		}
	}
}

// New constructs a *Request from an already parsed method and request target,
// e.g., "/foo?param1=bar".
//
// Transport headers set by opts are added first.
// Then, New parses the query string of target and adds every param as a header,
// so a query param is retrievable with Header just like a transport header.
func New(method, target string, opts ...Option) *Request {
	r := &Request{method: method, target: target, scheme: DefaultScheme}
	for _, opt := range opts {
		opt(r)
	}

	_, rawQuery, _ := param.SplitTarget(target)
	r.query = param.ParseQuery(rawQuery)
	for _, p := range r.query {
		r.headers.Add(p.Key, p.Value)
	}

	return r
}

// AddHeader appends value to the values for name.
// AddHeader does not decode value.
func (r *Request) AddHeader(name, value string) { r.headers.Add(name, value) }

// Header returns the first value for name, or false if there is none.
func (r *Request) Header(name string) (string, bool) { return r.headers.Get(name) }

// RequireHeader returns the first value for name.
// If there is none, RequireHeader returns an error carrying msg that wraps [rex.ErrBadRequest].
func (r *Request) RequireHeader(name, msg string) (string, error) {
	return r.headers.Require(name, msg)
}

// Headers returns every value for name in the order added.
// Headers returns an empty slice if there are none.
func (r *Request) Headers(name string) []string { return r.headers.Values(name) }

// HeaderNames returns the name of every header and query param, sorted.
func (r *Request) HeaderNames() []string { return r.headers.Names() }

// QueryParams returns the decoded query params in the order they appear in the request target.
func (r *Request) QueryParams() param.Params {
	params := make(param.Params, len(r.query))
	copy(params, r.query)

	return params
}

// QueryStringMap maps each query param to its first value.
// QueryStringMap never returns nil.
func (r *Request) QueryStringMap() map[string]string {
	m := make(map[string]string, len(r.query))
	for _, p := range r.query {
		if _, ok := m[p.Key]; !ok {
			m[p.Key] = p.Value
		}
	}

	return m
}

// Body returns the raw request body.
func (r *Request) Body() []byte { return r.body }

// BodyFromURLFormEncoded parses the body as application/x-www-form-urlencoded,
// decoding keys and values.
func (r *Request) BodyFromURLFormEncoded() url.Values {
	return r.BodyFromURLFormEncodedRaw(true)
}

// BodyFromURLFormEncodedRaw parses the body as application/x-www-form-urlencoded.
// If decode is false, keys and values are returned exactly as sent.
//
// The body is parsed once per value of decode; later calls return the same url.Values.
func (r *Request) BodyFromURLFormEncodedRaw(decode bool) url.Values {
	i := 0
	if decode {
		i = 1
	}

	if r.form[i] == nil {
		r.form[i] = param.ParseForm(r.body, decode)
	}

	return r.form[i]
}

// HTTPMethod returns the method the request was sent with.
func (r *Request) HTTPMethod() string { return r.method }

// BaseURL returns the scheme and host the request was sent to, e.g., "https://example.com".
func (r *Request) BaseURL() string {
	var host string
	if vals, ok := r.headers.Lookup(hostHeader); ok && len(vals) > 0 {
		host = vals[0]
	}

	return r.scheme + "://" + host
}

// Path returns the request target as sent, including any query string.
func (r *Request) Path() string { return r.target }

// URL returns BaseURL joined with Path.
func (r *Request) URL() string { return r.BaseURL() + r.Path() }
