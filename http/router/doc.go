/*
Package router routes HTTP requests to handlers by path and effective HTTP method.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.

Before a request reaches the [mux.Router], the *Router builds a *req.Request facade for it
and applies any method override the client sent through the "_method" query param.
A Route registered with http.MethodPut therefore handles both of these:

	PUT /users/1
	POST /users/1?_method=PUT

A [Route] is the standardized data model for registering a handler.
A path and an HTTP method comprise a Route.
Before a request gets to a handler,
any middlewares added to the Route are called in the order they appear.
*/
package router
