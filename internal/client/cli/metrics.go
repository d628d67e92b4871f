package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tweetstats/internal/client/export"
	"github.com/dmitrijs2005/tweetstats/internal/client/render"
	"github.com/dmitrijs2005/tweetstats/internal/client/view"
)

var ErrNothingToExport = errors.New("nothing to export, analyze a username first")

// SetUsername fills the form input without fetching anything.
func (a *App) SetUsername(_ context.Context, username string) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	c.SetUsername(username)
	return nil
}

// Analyze submits username, or the current input when username is empty,
// and prints the view once the fetch has settled.
func (a *App) Analyze(ctx context.Context, username string) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	if username == "" {
		username = c.Snapshot().Username
	}

	done := c.Submit(ctx, username)
	a.println(render.LoadingText)

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	a.println(render.View(c.Snapshot()))
	return nil
}

func (a *App) Show(_ context.Context) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	a.println(render.View(c.Snapshot()))
	return nil
}

func (a *App) Reverse(_ context.Context, text string) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	a.println(c.Reverse(text))
	return nil
}

// Export renders the loaded chart as PNG and hands it to the sink. name
// defaults to the analyzed username.
func (a *App) Export(ctx context.Context, name string) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}

	s := c.Snapshot()
	loaded, ok := s.State.(view.Loaded)
	if !ok || len(loaded.Records) == 0 {
		return ErrNothingToExport
	}
	if name == "" {
		name = s.Username
	}

	png, err := render.ChartPNG(loaded.Records, render.Heading(s.Username), render.DefaultPNGWidth, render.DefaultPNGHeight)
	if err != nil {
		return err
	}

	location, err := a.sink.Put(ctx, export.FileName(name), png)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "chart exported", "location", location)
	a.println("Chart saved to", location)
	return nil
}
