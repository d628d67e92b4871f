// Package metrics turns a username into chart-ready public engagement
// numbers.
package metrics

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tweetstats/internal/client/client"
	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/logging"
)

// Result is the decoded body of a successful metrics request. A zero
// Result (nil Data) is what tolerant mode hands back after a failure.
type Result = client.UserResponse

type UserSource interface {
	UserByUsername(ctx context.Context, username string, auth client.Auth) (*client.UserResponse, error)
}

type Fetcher struct {
	source         UserSource
	bearerToken    string
	userCredential string
	tolerant       bool
	notifier       notify.Notifier
	logger         logging.Logger
}

type Option func(*Fetcher)

// WithUserCredential forwards the session credential as X-Auth-Token in
// addition to the static bearer token.
func WithUserCredential(credential string) Option {
	return func(f *Fetcher) { f.userCredential = credential }
}

// WithTolerance makes Fetch report failures through n and return an empty
// Result instead of an error.
func WithTolerance(n notify.Notifier) Option {
	return func(f *Fetcher) {
		f.tolerant = true
		f.notifier = n
	}
}

func WithLogger(l logging.Logger) Option {
	return func(f *Fetcher) { f.logger = l.With("module", "metrics") }
}

func NewFetcher(source UserSource, bearerToken string, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:      source,
		bearerToken: bearerToken,
		notifier:    notify.Discard,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues exactly one request for username, which is passed through
// untouched. Cancellation is always returned as an error, even in tolerant
// mode.
func (f *Fetcher) Fetch(ctx context.Context, username string) (*Result, error) {
	res, err := f.source.UserByUsername(ctx, username, client.Auth{
		BearerToken:    f.bearerToken,
		UserCredential: f.userCredential,
	})
	if err == nil {
		f.logger.Debug(ctx, "metrics fetched", "username", username)
		return res, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	f.logger.Warn(ctx, "metrics fetch failed", "username", username, "error", err)
	if !f.tolerant {
		return nil, err
	}

	f.notifier.Notify(notify.LevelError, "Failed to fetch data")
	return &Result{}, nil
}
