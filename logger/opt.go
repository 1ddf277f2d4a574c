package logger

import "log"

// A LoggerOptFn is a functional option configuring a RexLogger when constructing a new one.
type LoggerOptFn func(*RexLogger)

// WithKind labels every message with kind, e.g., rex.HTTPLogKind.
func WithKind(kind string) LoggerOptFn {
	return func(l *RexLogger) {
		l.kind = kind
	}
}

// WithLevel sets the log level RexLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *RexLogger) {
		if level != LogLevelUnk {
			l.ll = level
		}
	}
}

// WithLogger sets the log.Logger RexLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *RexLogger) {
		l.l = log
	}
}
