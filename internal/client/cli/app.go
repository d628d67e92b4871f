package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/tweetstats/internal/client/client"
	"github.com/dmitrijs2005/tweetstats/internal/client/config"
	"github.com/dmitrijs2005/tweetstats/internal/client/export"
	"github.com/dmitrijs2005/tweetstats/internal/client/metrics"
	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/client/render"
	"github.com/dmitrijs2005/tweetstats/internal/client/session"
	"github.com/dmitrijs2005/tweetstats/internal/client/storage"
	"github.com/dmitrijs2005/tweetstats/internal/client/view"
	"github.com/dmitrijs2005/tweetstats/internal/logging"
)

type App struct {
	config *config.Config
	api    client.Client
	guard  *session.Guard
	sink   export.Sink
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	mu         sync.Mutex
	route      string
	controller *view.Controller
}

// NewApp opens the local database and builds the HTTP client and export
// sink described by c.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	var sink export.Sink = export.NewFileSink(c.ExportDir)
	if c.S3.Bucket != "" {
		s3Sink, err := export.NewS3Sink(ctx, export.S3Config{
			Bucket:       c.S3.Bucket,
			Prefix:       c.S3.Prefix,
			Region:       c.S3.Region,
			BaseEndpoint: c.S3.BaseEndpoint,
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		sink = s3Sink
	}

	if c.UsesPlaceholderToken() {
		l.Warn(ctx, "metrics bearer token is still the placeholder, requests will be rejected by a real API",
			"token", config.PlaceholderBearerToken)
	}

	api := client.NewHTTPClient(c.MetricsBaseURL, c.AuthBaseURL, c.RequestTimeout, l)
	app := newApp(c, api, storage.NewSQLiteStore(db), sink, l, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, api client.Client, store storage.Store, sink export.Sink,
	l logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		api:    api,
		sink:   sink,
		logger: l.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.guard = session.NewGuard(store, api, session.NavigatorFunc(a.navigate), notify.Func(a.notify), l)
	return a
}

func (a *App) navigate(route string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.route != route {
		a.logger.Debug(context.Background(), "route changed", "from", a.route, "to", route)
	}
	a.route = route
	if route == session.LoginRoute {
		a.controller = nil
	}
}

func (a *App) notify(level notify.Level, msg string) {
	a.println(render.Notification(level, msg))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) currentController() *view.Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.controller
}

func (a *App) isLoggedIn() bool {
	return a.currentController() != nil
}

// mount validates the stored credential and, on success, builds the metrics
// view for the session.
func (a *App) mount(ctx context.Context) error {
	sess, err := a.guard.Mount(ctx)
	if err != nil {
		return err
	}

	opts := []metrics.Option{metrics.WithLogger(a.logger)}
	if a.config.ForwardUserCredential {
		opts = append(opts, metrics.WithUserCredential(sess.Credential))
	}
	if a.config.TolerantFetch {
		opts = append(opts, metrics.WithTolerance(notify.Func(a.notify)))
	}
	fetcher := metrics.NewFetcher(a.api, a.config.BearerToken, opts...)

	a.mu.Lock()
	a.controller = view.NewController(fetcher, *sess, a.guard, a.logger)
	a.mu.Unlock()
	a.navigate(session.HomeRoute)
	return nil
}

func (a *App) getStatus() string {
	c := a.currentController()
	if c == nil {
		return "(logged out)"
	}
	s := c.Snapshot()
	if s.DisplayName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s.DisplayName)
}

// Run mounts the session, asks for a login when needed and then serves
// commands until the input ends or the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.println(render.Title)
	a.println("Type 'help' for commands")

	if err := a.mount(ctx); err != nil {
		a.logger.Debug(ctx, "no session on start", "error", err)
		if err := a.Login(ctx); err != nil {
			a.println(render.Error(err))
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if c := a.currentController(); c != nil {
		c.Wait()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(context.Background(), "close database", "error", err)
		}
	}
}
