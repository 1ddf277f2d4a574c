/*
Command rexecho runs a web server answering every request
with how the rex request facade sees it.

	GET  /echo?name=value        the facade's view, as JSON
	POST /echo?_method=DELETE    routed as DELETE
	GET  /greet?name=rex         decodes and validates parameters
	GET  /private/echo           requires an X-Api-Key header

Pass --fasthttp-addr, e.g., ":3001", to also serve /echo's view
for every request over fasthttp.
--rate-limit and --rate-burst, or RATE_LIMIT and RATE_LIMIT_BURST,
configure how many requests each client may make to /echo.
Confer package ranger for the environment variables configuring the web server.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/middleware"
	"github.com/xy-planning-network/rex/http/router"
	"github.com/xy-planning-network/rex/ranger"
	"golang.org/x/time/rate"
)

const (
	fastAddrEnvVar  = "FASTHTTP_ADDR"
	rateEnvVar      = "RATE_LIMIT"
	defaultRate     = 5
	rateBurstEnvVar = "RATE_LIMIT_BURST"
	defaultBurst    = 20
)

var (
	fastAddr  string
	rateLimit int
	rateBurst int
	rootCmd   = &cobra.Command{
		Use:          "rexecho",
		Short:        "Echo how rex sees every request",
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&fastAddr, "fasthttp-addr", os.Getenv(fastAddrEnvVar), "address to also serve echoes over fasthttp at")
	rootCmd.Flags().IntVar(&rateLimit, "rate-limit", rex.EnvVarOrInt(rateEnvVar, defaultRate), "requests per second each client may make to /echo")
	rootCmd.Flags().IntVar(&rateBurst, "rate-burst", rex.EnvVarOrInt(rateBurstEnvVar, defaultBurst), "requests a client may burst to /echo")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	rng, err := ranger.New(ranger.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	routes(rng)

	l := rng.EmitLogger()
	if fastAddr != "" {
		srv := &fasthttp.Server{
			Handler: fastEcho(l, rng.EmitReqOptions()...),
			Name:    "rexecho",
		}

		go func() {
			l.Info(fmt.Sprintf("running fasthttp server at %s", fastAddr), nil)
			if err := srv.ListenAndServe(fastAddr); err != nil {
				l.Error(fmt.Sprintf("could not listen: %s", err), nil)
			}
		}()

		defer func() {
			if err := srv.Shutdown(); err != nil {
				l.Error(fmt.Sprintf("could not shutdown fasthttp server: %s", err), nil)
			}
		}()
	}

	return rng.Guide()
}

func routes(rng *ranger.Ranger) {
	h := handler{rng.Responder}

	echoRoutes := make([]router.Route, 0, 4)
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		echoRoutes = append(echoRoutes, router.Route{Path: "/echo", Method: method, Handler: h.echo})
	}

	rng.HandleRoutes(echoRoutes, middleware.RateLimit(middleware.NewVisitorsWithLimit(rate.Limit(rateLimit), rateBurst)))
	rng.HandleRoutes([]router.Route{
		{Path: "/greet", Method: http.MethodGet, Handler: h.greet},
		{Path: "/greet", Method: http.MethodPost, Handler: h.greet},
	})

	private := rng.Subrouter("/private")
	private.Handle(router.Route{
		Path:        "/echo",
		Method:      http.MethodGet,
		Handler:     h.echo,
		Middlewares: []middleware.Adapter{middleware.RequireHeader("X-Api-Key", "an API key is required")},
	})
}
