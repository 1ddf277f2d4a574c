package middleware

import (
	"net/http"

	"github.com/xy-planning-network/rex/http/req"
)

// OverrideMethod replaces r.Method with the effective method of the request,
// so a POST carrying "_method=DELETE" in its query string is handled as a DELETE.
//
// OverrideMethod prefers the facade set by InjectRequest.
// Without one, it parses r.URL for the override itself.
// Apply OverrideMethod before routing since routers match on r.Method.
func OverrideMethod() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := effectiveMethod(r)
			if method != r.Method {
				r = r.Clone(r.Context())
				r.Method = method
			}

			h.ServeHTTP(w, r)
		})
	}
}

func effectiveMethod(r *http.Request) string {
	if rr, ok := req.FromContext(r.Context()); ok {
		return rr.EffectiveHTTPMethod()
	}

	return req.New(r.Method, r.URL.RequestURI()).EffectiveHTTPMethod()
}
