package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/rex/http/middleware"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/logger"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Method is matched against the effective method of a request,
// so a Route with Method http.MethodDelete handles POST /path?_method=DELETE.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to handlers by path and effective HTTP method.
type Router struct {
	everyReqStack []middleware.Adapter
	handler       http.Handler
	r             *mux.Router
}

// New constructs a *Router.
//
// Before a route is matched, every request passes through this stack:
//
//	middleware.RecoverPanic
//	middleware.RequestID
//	middleware.InjectRequest
//	middleware.OverrideMethod
//	middleware.LogRequest
//
// opts configure the *req.Request facade InjectRequest builds.
func New(l logger.Logger, opts ...req.Option) *Router {
	rt := &Router{r: mux.NewRouter()}
	rt.OnEveryRequest(
		middleware.RecoverPanic(l),
		middleware.RequestID(),
		middleware.InjectRequest(opts...),
		middleware.OverrideMethod(),
		middleware.LogRequest(l),
	)

	return rt
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = handler
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after them.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(append([]middleware.Adapter{}, middlewares...), route.Middlewares...)
		r.r.Handle(route.Path, middleware.Chain(route.Handler, mws...)).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request before matching a Route.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
	r.handler = middleware.Chain(r.r, r.everyReqStack...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// Subrouter constructs a [*Router] that registers Routes under prefix,
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users.
//
// Requests reach a subrouter's Routes through the parent *Router,
// so only the parent's ServeHTTP ought to be given to a server.
func (r *Router) Subrouter(prefix string) *Router {
	sub := &Router{r: r.r.PathPrefix(prefix).Subrouter()}
	sub.handler = sub.r

	return sub
}

// Vars returns the route variables matched for the request, e.g., "id" in "/users/{id}".
func Vars(r *http.Request) map[string]string { return mux.Vars(r) }
