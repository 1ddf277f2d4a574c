/*
Package ranger initializes and manages a rex app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type,
constructed with [New].

[*Ranger.Guide] begins a rex app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the rex web server.

Register routes on the embedded [*router.Router] before calling [*Ranger.Guide].
Stop that web server with [*Ranger.Shutdown], call [*Ranger.Cancel],
cancel the context passed in with [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a rex app through environment variables
and by passing [RangerOption] to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL_SCHEME: the scheme [req.Request.URL] reports; default: https
  - ENVIRONMENT: the environment the application is running in; cf. [rex.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_COLOR: whether to colorize log levels; default: true in DEVELOPMENT, false otherwise
  - LOG_LEVEL: the level at which to begin logging; default: DEBUG in DEVELOPMENT, INFO otherwise; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: when set, errors are also reported to Sentry, except in TESTING
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
