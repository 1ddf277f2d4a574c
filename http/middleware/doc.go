/*
The middleware package defines what a middleware is in rex and a set of basic middlewares.

The available middlewares are:
  - InjectRequest
  - LogRequest
  - OverrideMethod
  - RateLimit
  - RecoverPanic
  - RequestID
  - RequireHeader

InjectRequest builds the *req.Request facade the others read from,
so it ought to come early in a chain.
OverrideMethod must run before a router matches on r.Method.
The router package applies this stack to every request:

	adpts := []middleware.Adapter{
		middleware.RecoverPanic(log),
		middleware.RequestID(),
		middleware.InjectRequest(opts...),
		middleware.OverrideMethod(),
		middleware.LogRequest(log),
	}

RateLimit and RequireHeader are left to individual routes, e.g.:

	rt.HandleRoutes(routes, middleware.RateLimit(middleware.NewVisitors()))
*/
package middleware
