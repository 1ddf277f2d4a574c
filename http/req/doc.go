/*
Package req provides a facade over an incoming HTTP request.

A [*Request] merges a request's query string into its headers,
so handlers look up a query param the same way they look up a header:

	r := req.New(http.MethodGet, "/foo?param1=bar", req.WithHeader("Host", "example.com"))
	r.Header("param1") // "bar", true

Query params are percent-decoded once, when the Request is constructed.
Headers added afterwards, through [*Request.AddHeader], are kept exactly as given.

# Method override

Clients that can only send GET and POST, HTML forms notably,
ask for PUT or DELETE with the reserved "_method" query param:

	POST /users/1?_method=DELETE

[*Request.HTTPMethod] always reports the method used on the wire.
[*Request.EffectiveHTTPMethod] reports the method a handler should act on.

# Decoding

[*Request.DecodeParams] and [*Request.DecodeBody] fill a pointer to a struct
from query params and form fields or from a JSON body, then validate it.
Failures are translated to rex sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package req
