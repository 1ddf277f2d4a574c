package middleware

import (
	"net/http"

	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
)

// RequireHeader answers 400 Bad Request with msg
// when the request has neither a header nor a query param named name.
//
// RequireHeader needs InjectRequest earlier in the chain;
// without the facade, it answers 500 Internal Server Error.
func RequireHeader(name, msg string) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rr, ok := req.FromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if _, err := rr.RequireHeader(name, msg); err != nil {
				http.Error(w, err.Error(), rex.StatusCode(err))
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
