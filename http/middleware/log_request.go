package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/logger"
)

// LogRequest logs the request's method, requested path, and originating IP address
// using the enclosed implementation of logger.Logger.
// When a method override applies, the effective method is logged alongside the actual one,
// e.g., "POST(DELETE) /users/1?_method=DELETE".
//
// LogRequest masks the values of the query params listed in rex.LogMaskParams,
// both in the message and in the attached logger.LogContext.
//
// If ls is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lc *logger.LogContext
			method := r.Method
			rr, ok := req.FromContext(r.Context())
			if ok {
				lc = &logger.LogContext{Request: rr}
				if eff := rr.EffectiveHTTPMethod(); eff != rr.HTTPMethod() {
					method = rr.HTTPMethod() + "(" + eff + ")"
				}
			}

			strs := []string{method, rex.MaskURL(r.URL.RequestURI(), rex.LogMaskParams...)}
			if ip, ok := r.Context().Value(rex.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			ls.Info(strings.Join(strs, " "), lc)
			h.ServeHTTP(w, r)
		})
	}
}
