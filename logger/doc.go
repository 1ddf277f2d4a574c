/*
Package logger provides logging functionality to a rex app by defining the required behavior in [Logger]
and providing an implementation of it with [RexLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[RexLogger] is initialized at a [LogLevel]
and only emits messages at or above that level of importance.
For example, if initialized with [LogLevelWarn],
only [*RexLogger.Warn], [*RexLogger.Error], and [*RexLogger.Fatal] produce messages.

Log messages emitted by [RexLogger] are composed of a few parts:
  - timestamp
  - log level and, optionally, kind
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [INFO] http middleware/log_request.go:43 'POST /users/1?_method=DELETE' log_context: {"request":{"effectiveMethod":"DELETE","method":"POST","url":"https://example.com/users/1?_method=DELETE"}}

The log context is a JSON-encoded [LogContext].
It allows for including additional data inessential to the message proper,
like the request being handled.

# SentryLogger

[SentryLogger] wraps a [SkipLogger], additionally shipping any [LogContext.Error]
logged at WARN or above to Sentry.
*/
package logger
