// Package session gates the client view behind a stored credential.
//
// Guard.Mount runs once when the view starts: without a credential it sends
// the user to the login route straight away; with one it asks the identity
// service who the credential belongs to, and on rejection forgets the
// credential before redirecting. Guard.Logout forgets the credential locally
// and redirects; nothing is revoked server-side.
//
// The resulting Session is a plain value handed to the components that
// need it. The credential itself lives in an injected storage.Store under
// CredentialKey.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/client/storage"
	"github.com/dmitrijs2005/tweetstats/internal/logging"
)

const (
	CredentialKey = "token"
	LoginRoute    = "/login"
	HomeRoute     = "/"
)

var (
	ErrNoCredential       = errors.New("no stored credential")
	ErrCredentialRejected = errors.New("credential rejected")
)

type Session struct {
	Credential  string
	DisplayName string
}

type Navigator interface {
	Navigate(route string)
}

type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

type IdentityClient interface {
	WhoAmI(ctx context.Context, credential string) (string, error)
}

type Guard struct {
	store    storage.Store
	identity IdentityClient
	nav      Navigator
	notifier notify.Notifier
	logger   logging.Logger
}

func NewGuard(store storage.Store, identity IdentityClient, nav Navigator, n notify.Notifier, l logging.Logger) *Guard {
	return &Guard{
		store:    store,
		identity: identity,
		nav:      nav,
		notifier: n,
		logger:   l.With("module", "session"),
	}
}

// Mount validates the stored credential. On success the returned Session
// carries the credential and the display name. Otherwise the navigator has
// already been sent to LoginRoute and the error is ErrNoCredential or
// ErrCredentialRejected. An empty stored value counts as no credential.
func (g *Guard) Mount(ctx context.Context) (*Session, error) {
	credential, err := g.store.Get(ctx, CredentialKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		g.logger.Error(ctx, "credential read failed", "error", err)
		g.nav.Navigate(LoginRoute)
		return nil, fmt.Errorf("%w: %v", ErrNoCredential, err)
	}
	if credential == "" {
		g.logger.Info(ctx, "no credential, redirecting", "route", LoginRoute)
		g.nav.Navigate(LoginRoute)
		return nil, ErrNoCredential
	}

	name, err := g.identity.WhoAmI(ctx, credential)
	if err != nil {
		g.logger.Warn(ctx, "credential rejected, redirecting", "route", LoginRoute, "error", err)
		if delErr := g.store.Delete(ctx, CredentialKey); delErr != nil {
			g.logger.Error(ctx, "credential delete failed", "error", delErr)
		}
		g.nav.Navigate(LoginRoute)
		return nil, fmt.Errorf("%w: %v", ErrCredentialRejected, err)
	}

	g.logger.Info(ctx, "session mounted", "name", name)
	return &Session{Credential: credential, DisplayName: name}, nil
}

// SignIn stores a freshly issued credential. The caller mounts again
// afterwards to validate it.
func (g *Guard) SignIn(ctx context.Context, credential string) error {
	if err := g.store.Set(ctx, CredentialKey, credential); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

// Logout forgets the credential, tells the user and redirects to LoginRoute.
// The redirect happens even if the store fails; that error is returned.
func (g *Guard) Logout(ctx context.Context) error {
	err := g.store.Delete(ctx, CredentialKey)
	if err != nil {
		g.logger.Error(ctx, "credential delete failed", "error", err)
		err = fmt.Errorf("delete credential: %w", err)
	}

	g.notifier.Notify(notify.LevelInfo, "Logged out")
	g.nav.Navigate(LoginRoute)
	return err
}
