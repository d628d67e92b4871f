// Package server runs the stand-in API: the auth endpoints the client logs
// in against and a metrics route shaped like the real users-by-username
// lookup. It handles graceful shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tweetstats/internal/logging"
	"github.com/dmitrijs2005/tweetstats/internal/server/config"
	"github.com/dmitrijs2005/tweetstats/internal/server/httpapi"
	"github.com/dmitrijs2005/tweetstats/internal/server/profiles"
	"github.com/dmitrijs2005/tweetstats/internal/server/users"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler *httpapi.Handler
}

func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	us := users.NewService(users.NewInMemoryRepository(), c)
	if err := us.Seed(ctx, c.Accounts); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	pr := profiles.NewInMemoryRepository(c.Profiles)

	if c.BearerToken == config.PlaceholderBearerToken {
		l.Warn(ctx, "metrics route accepts the placeholder bearer token")
	}

	return &App{config: c, logger: l, handler: httpapi.NewHandler(us, pr, c.BearerToken, l)}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Serve answers requests on l until ctx is done, then shuts down gracefully.
func (app *App) Serve(ctx context.Context, l net.Listener) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Handler:           app.handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run listens on the configured address and serves until a termination
// signal arrives or ctx is done.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	l, err := net.Listen("tcp", app.config.EndpointAddr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, l)
}
