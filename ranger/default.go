package ranger

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/http/resp"
	"github.com/xy-planning-network/rex/http/router"
	"github.com/xy-planning-network/rex/logger"
)

const (
	// Base URL defaults
	baseURLSchemeEnvVar = "BASE_URL_SCHEME"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logColorEnvVar  = "LOG_COLOR"
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = "INFO"
	devLogLvl       = "DEBUG"
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// defaultLogger constructs a [logger.Logger] configured for use in the application.
//
// Development logs at DEBUG and in color unless LOG_LEVEL or LOG_COLOR say otherwise.
// When SENTRY_DSN is set, errors are shipped to Sentry as well, except when testing.
func defaultLogger(env rex.Environment, out io.Writer) logger.Logger {
	lvl := defaultLogLvl
	if env.IsDevelopment() {
		lvl = devLogLvl
	}

	color.NoColor = !rex.EnvVarOrBool(logColorEnvVar, env.IsDevelopment())

	var l logger.SkipLogger = logger.New(
		logger.WithKind(rex.AppLogKind),
		logger.WithLevel(logger.NewLogLevel(rex.EnvVarOrString(logLevelEnvVar, lvl))),
		logger.WithLogger(log.New(out, "", log.LstdFlags)),
	)
	l.Debug("setting up app logger", nil)

	if dsn := os.Getenv(sentryDsnEnvVar); dsn != "" && !env.IsTesting() {
		sl := logger.NewSentryLogger(env, l, dsn)
		sl.Debug("using SentryLogger for app logger", nil)
		return sl
	}

	return l
}

// defaultReqOptions constructs the [req.Option] every *req.Request the rex app builds is configured with.
func defaultReqOptions() []req.Option {
	return []req.Option{req.WithScheme(rex.EnvVarOrString(baseURLSchemeEnvVar, req.DefaultScheme))}
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
//
// Requests matching no route are answered by responder with 404 Not Found.
func defaultRouter(l logger.Logger, responder *resp.Responder, opts []req.Option) *router.Router {
	route := router.New(l, opts...)
	route.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.Err(w, r, fmt.Errorf("%w: no route for %s", rex.ErrNotExist, r.URL.Path))
	})

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := strings.TrimPrefix(rex.EnvVarOrString(portEnvVar, DefaultPort), ":")
	srv := &http.Server{
		Addr:         net.JoinHostPort(rex.EnvVarOrString(hostEnvVar, DefaultHost), port),
		IdleTimeout:  rex.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  rex.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: rex.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
