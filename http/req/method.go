package req

import (
	"net/http"
	"strings"
)

// MethodOverrideKey is the query param a client sets to override the HTTP method.
const MethodOverrideKey = "_method"

// overridable lists the methods a client may ask for with MethodOverrideKey.
var overridable = []string{http.MethodPut, http.MethodDelete}

// ResolveMethod returns the method a request sent with actual ought to be handled as
// given the value of its MethodOverrideKey param.
//
// An override matching PUT or DELETE, in any case, wins;
// any other override is ignored.
func ResolveMethod(actual, override string) string {
	for _, m := range overridable {
		if strings.EqualFold(override, m) {
			return m
		}
	}

	return actual
}

// EffectiveHTTPMethod returns the method the request ought to be handled as.
// MethodOverrideKey is matched case-insensitively.
//
// Unlike HTTPMethod, EffectiveHTTPMethod considers a method override sent by the client.
func (r *Request) EffectiveHTTPMethod() string {
	vals, ok := r.headers.Lookup(MethodOverrideKey)
	if !ok || len(vals) == 0 {
		return r.method
	}

	return ResolveMethod(r.method, vals[0])
}
