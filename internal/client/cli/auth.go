package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tweetstats/internal/client/render"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var ErrNotLoggedIn = errors.New("not logged in")

// Login prompts for credentials, exchanges them for a token at the auth
// service, stores the token and mounts the session with it.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	token, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "user", userName, "error", err)
		return fmt.Errorf("login: %w", err)
	}

	if err := a.guard.SignIn(ctx, token); err != nil {
		return err
	}
	if err := a.mount(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "login successful", "user", userName)
	a.println(render.View(a.currentController().Snapshot()))
	return nil
}

// Logout cancels any pending fetch, forgets the stored credential and
// returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	err := c.Logout(ctx)
	c.Wait()
	return err
}

// WhoAmI prints the display name resolved when the session was mounted.
func (a *App) WhoAmI(_ context.Context) error {
	c := a.currentController()
	if c == nil {
		return ErrNotLoggedIn
	}
	a.println("Signed in as", c.Snapshot().DisplayName)
	return nil
}
