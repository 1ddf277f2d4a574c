package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/rex"
	"github.com/xy-planning-network/rex/http/req"
	"github.com/xy-planning-network/rex/http/resp"
	"github.com/xy-planning-network/rex/http/router"
	"github.com/xy-planning-network/rex/logger"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a rex app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cancel  context.CancelFunc
	ctx     context.Context
	env     rex.Environment
	l       logger.Logger
	reqOpts []req.Option
	srv     *http.Server
}

// New constructs a Ranger from the provided options.
// Whatever the options leave unset is configured from environment variables.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", rex.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.env == "" {
		r.env = rex.EnvVarOrEnv(environmentEnvVar, rex.Development)
	}

	if r.l == nil {
		r.l = defaultLogger(r.env, os.Stdout)
	}

	if r.Responder == nil {
		r.Responder = resp.NewResponder(r.l)
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}

	r.reqOpts = defaultReqOptions()
	if r.Router == nil {
		r.Router = defaultRouter(r.l, r.Responder, r.reqOpts)
	}
	r.srv.Handler = r.Router

	for _, fn := range followups {
		if err := fn(); err != nil {
			r.cancel()
			return nil, fmt.Errorf("%w: %w", rex.ErrBadConfig, err)
		}
	}

	r.l.Debug(fmt.Sprintf("using env %s", r.env), nil)

	return r, nil
}

// Cancel stops [*Ranger.Guide], shutting down the web server.
func (r *Ranger) Cancel() { r.cancel() }

func (r *Ranger) EmitEnv() rex.Environment  { return r.env }
func (r *Ranger) EmitLogger() logger.Logger { return r.l }
func (r *Ranger) EmitServer() *http.Server  { return r.srv }

// EmitReqOptions returns the [req.Option] the default router builds every *req.Request with,
// for building a *req.Request over another transport the same way.
func (r *Ranger) EmitReqOptions() []req.Option {
	return append([]req.Option{}, r.reqOpts...)
}

// Guide begins the web server.
//
// These, and (*Ranger).Cancel, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// Guide returns the error the web server failed to listen with, if any.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
			r.cancel()
		}
	}()

	<-r.ctx.Done()

	select {
	case err := <-errCh:
		r.l.Error(err.Error(), nil)
		return err
	default:
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	defer r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
