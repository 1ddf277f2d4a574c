package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/resp"
	"github.com/xy-planning-network/rex/http/router"
	"github.com/xy-planning-network/rex/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// An OptFollowup is called only after every RangerOption ran
// and defaults filled in whatever the options left unset.
//
// WithEnv is an example of the first.
// WithRouter is an example of the second,
// since it reports on the logger that may only be set by default.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext sets the parent context.Context of the rex app.
// Cancelling ctx stops [*Ranger.Guide].
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", rex.ErrMissingData)
		}

		rng.ctx = ctx

		return nil, nil
	}
}

// WithEnv sets the Environment of the rex app,
// overriding the ENVIRONMENT environment variable.
func WithEnv(env rex.Environment) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := env.Valid(); err != nil {
			return nil, fmt.Errorf("%w: %q", err, env)
		}

		rng.env = env

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the rex app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", rex.ErrMissingData)
		}

		rng.l = l

		return nil, nil
	}
}

// WithResponder exposes the *resp.Responder to the rex app.
func WithResponder(r *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.Responder = r

		return func() error {
			rng.l.Debug("using responder", nil)
			return nil
		}, nil
	}
}

// WithRouter exposes the *router.Router to the rex app,
// serving it instead of the default router.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil router", rex.ErrMissingData)
		}

		rng.Router = r

		return func() error {
			rng.l.Debug(fmt.Sprintf("using router %T", r), nil)
			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the rex app.
// Any Handler set on s is replaced by the rex app's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", rex.ErrMissingData)
		}

		rng.srv = s

		return nil, nil
	}
}
