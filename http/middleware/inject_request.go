package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
)

// RequestIDHeader is the header InjectRequest copies the request ID into.
const RequestIDHeader = "X-Request-Id"

// InjectRequest builds a *req.Request facade over every request
// and stashes it in the request context under rex.RequestKey.
// Use req.FromContext to retrieve it in handlers.
//
// InjectRequest also promotes the client IP address to the request context under rex.IpAddrKey,
// read from transport headers or r.RemoteAddr and never from query params.
// If RequestID ran first, the request ID is added to the facade as RequestIDHeader,
// unless the client already sent one as a header.
// Either way, it comes before any query param of the same name.
//
// A request whose body cannot be read is answered with 400 Bad Request.
func InjectRequest(opts ...req.Option) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ropts := opts
			if id, ok := r.Context().Value(rex.RequestIDKey).(string); ok && r.Header.Get(RequestIDHeader) == "" {
				ropts = append(append([]req.Option{}, opts...), req.WithHeader(RequestIDHeader, id))
			}

			rr, err := req.FromHTTP(r, ropts...)
			if err != nil {
				http.Error(w, err.Error(), rex.StatusCode(err))
				return
			}

			ip := GetIPAddress(r.Header)
			if ip == unknownIP {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					ip = host
				}
			}

			ctx := context.WithValue(req.NewContext(r.Context(), rr), rex.IpAddrKey, ip)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
