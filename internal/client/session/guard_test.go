package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/client/storage"
	"github.com/dmitrijs2005/tweetstats/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	name  string
	err   error
	calls []string
}

func (f *fakeIdentity) WhoAmI(_ context.Context, credential string) (string, error) {
	f.calls = append(f.calls, credential)
	return f.name, f.err
}

type routes []string

func (r *routes) Navigate(route string) { *r = append(*r, route) }

type brokenStore struct {
	storage.Store
	getErr error
	delErr error
}

func (b brokenStore) Get(ctx context.Context, key string) (string, error) {
	if b.getErr != nil {
		return "", b.getErr
	}
	return b.Store.Get(ctx, key)
}

func (b brokenStore) Delete(ctx context.Context, key string) error {
	if b.delErr != nil {
		return b.delErr
	}
	return b.Store.Delete(ctx, key)
}

type fixture struct {
	store    *storage.MemoryStore
	identity *fakeIdentity
	nav      *routes
	notes    *notify.Recorder
	guard    *Guard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    storage.NewMemoryStore(),
		identity: &fakeIdentity{name: "Alice"},
		nav:      &routes{},
		notes:    &notify.Recorder{},
	}
	f.guard = NewGuard(f.store, f.identity, f.nav, f.notes, logging.Discard())
	return f
}

func TestMount_NoCredential_RedirectsWithoutCallingIdentity(t *testing.T) {
	f := newFixture(t)

	sess, err := f.guard.Mount(context.Background())

	require.ErrorIs(t, err, ErrNoCredential)
	assert.Nil(t, sess)
	assert.Equal(t, routes{LoginRoute}, *f.nav)
	assert.Empty(t, f.identity.calls)
	assert.Empty(t, f.notes.All(), "no user-visible error for a missing credential")
}

func TestMount_EmptyCredentialCountsAsMissing(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(context.Background(), CredentialKey, ""))

	_, err := f.guard.Mount(context.Background())

	require.ErrorIs(t, err, ErrNoCredential)
	assert.Empty(t, f.identity.calls)
}

func TestMount_ValidCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, CredentialKey, "tok"))

	sess, err := f.guard.Mount(ctx)

	require.NoError(t, err)
	assert.Equal(t, &Session{Credential: "tok", DisplayName: "Alice"}, sess)
	assert.Equal(t, []string{"tok"}, f.identity.calls, "exactly one identity check per mount")
	assert.Empty(t, *f.nav)

	v, err := f.store.Get(ctx, CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestMount_RejectedCredential_DeletesAndRedirects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, CredentialKey, "stale"))
	f.identity.err = errors.New("401")

	sess, err := f.guard.Mount(ctx)

	require.ErrorIs(t, err, ErrCredentialRejected)
	assert.Nil(t, sess)
	assert.Equal(t, routes{LoginRoute}, *f.nav)

	_, err = f.store.Get(ctx, CredentialKey)
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Empty(t, f.notes.All(), "rejection looks the same as a missing credential")
}

func TestMount_RejectedCredential_DeleteFailureStillRedirects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, CredentialKey, "stale"))
	f.identity.err = errors.New("401")

	g := NewGuard(brokenStore{Store: f.store, delErr: errors.New("disk full")}, f.identity, f.nav, f.notes, logging.Discard())

	_, err := g.Mount(ctx)

	require.ErrorIs(t, err, ErrCredentialRejected)
	assert.Equal(t, routes{LoginRoute}, *f.nav)
}

func TestMount_StoreReadFailure_Redirects(t *testing.T) {
	f := newFixture(t)
	g := NewGuard(brokenStore{Store: f.store, getErr: errors.New("io")}, f.identity, f.nav, f.notes, logging.Discard())

	_, err := g.Mount(context.Background())

	require.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, routes{LoginRoute}, *f.nav)
	assert.Empty(t, f.identity.calls)
}

func TestLogout_ClearsNotifiesRedirects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, CredentialKey, "tok"))

	require.NoError(t, f.guard.Logout(ctx))

	_, err := f.store.Get(ctx, CredentialKey)
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, routes{LoginRoute}, *f.nav)
	assert.Equal(t, []notify.Notification{{Level: notify.LevelInfo, Message: "Logged out"}}, f.notes.All())
}

func TestLogout_WithoutCredentialStillRedirects(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.guard.Logout(context.Background()))
	assert.Equal(t, routes{LoginRoute}, *f.nav)
}

func TestLogout_StoreFailureIsReturnedAfterRedirect(t *testing.T) {
	f := newFixture(t)
	g := NewGuard(brokenStore{Store: f.store, delErr: errors.New("disk full")}, f.identity, f.nav, f.notes, logging.Discard())

	err := g.Logout(context.Background())

	require.Error(t, err)
	assert.Equal(t, routes{LoginRoute}, *f.nav)
	assert.Len(t, f.notes.All(), 1)
}

func TestSignIn_ThenMount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.guard.SignIn(ctx, "fresh"))
	sess, err := f.guard.Mount(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fresh", sess.Credential)
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	NavigatorFunc(func(r string) { got = r }).Navigate(LoginRoute)
	assert.Equal(t, LoginRoute, got)
}
