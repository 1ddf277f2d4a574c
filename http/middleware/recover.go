package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/rex/logger"
)

// recoveryLogger adapts a logger.Logger to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	l logger.Logger
}

func (rl recoveryLogger) Println(v ...any) {
	rl.l.Error(fmt.Sprint(v...), &logger.LogContext{Caller: "http/middleware/recover.go"})
}

// RecoverPanic answers 500 Internal Server Error when a handler panics,
// logging the recovered value at ERROR.
//
// If ls is nil, the recovered value is logged with the std lib log pkg.
func RecoverPanic(ls logger.Logger) Adapter {
	opts := []handlers.RecoveryOption{handlers.PrintRecoveryStack(false)}
	if ls != nil {
		opts = append(opts, handlers.RecoveryLogger(recoveryLogger{ls}))
	}

	return func(h http.Handler) http.Handler {
		return handlers.RecoveryHandler(opts...)(h)
	}
}
