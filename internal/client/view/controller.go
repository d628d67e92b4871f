// Package view holds the client's view state and wires user actions to the
// metrics fetcher and the session guard.
package view

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tweetstats/internal/client/metrics"
	"github.com/dmitrijs2005/tweetstats/internal/client/session"
	"github.com/dmitrijs2005/tweetstats/internal/logging"
	"github.com/dmitrijs2005/tweetstats/internal/textx"
)

type Fetcher interface {
	Fetch(ctx context.Context, username string) (*metrics.Result, error)
}

type LogoutHandler interface {
	Logout(ctx context.Context) error
}

// Snapshot is a copy of the view state at one instant.
type Snapshot struct {
	DisplayName   string
	Username      string
	Submitted     bool
	State         State
	ReverseInput  string
	ReverseOutput string
}

type Controller struct {
	fetcher Fetcher
	logout  LogoutHandler
	logger  logging.Logger

	mu            sync.Mutex
	displayName   string
	username      string
	submitted     bool
	state         State
	generation    uint64
	cancel        context.CancelFunc
	reverseInput  string
	reverseOutput string

	inflight sync.WaitGroup
}

func NewController(f Fetcher, sess session.Session, lo LogoutHandler, l logging.Logger) *Controller {
	return &Controller{
		fetcher:     f,
		logout:      lo,
		logger:      l.With("module", "view"),
		displayName: sess.DisplayName,
		state:       Idle{},
	}
}

// SetUsername updates the form input without submitting it.
func (c *Controller) SetUsername(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
}

// Submit marks the form submitted and starts fetching metrics for username.
// A fetch still running from an earlier Submit is cancelled and its result,
// if it arrives anyway, is dropped. The returned channel is closed once this
// submission has settled, whether its result was applied or dropped.
func (c *Controller) Submit(ctx context.Context, username string) <-chan struct{} {
	fetchCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.generation++
	gen := c.generation
	c.cancel = cancel
	c.username = username
	c.submitted = true
	c.state = Loading{}
	c.mu.Unlock()

	c.logger.Debug(ctx, "submit", "username", username, "generation", gen)

	done := make(chan struct{})
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(done)
		defer cancel()

		res, err := c.fetcher.Fetch(fetchCtx, username)
		c.apply(ctx, gen, res, err)
	}()

	return done
}

func (c *Controller) apply(ctx context.Context, gen uint64, res *metrics.Result, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug(ctx, "stale result dropped", "generation", gen, "current", c.generation)
		return
	}
	c.cancel = nil

	if err != nil {
		c.state = Failed{Err: err}
		return
	}
	c.state = Loaded{Records: metrics.Records(res)}
}

// Reverse stores text as the reversal input and returns its reversal.
func (c *Controller) Reverse(text string) string {
	out := textx.Reverse(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reverseInput = text
	c.reverseOutput = out
	return out
}

// Logout drops any running fetch, resets the view and hands over to the
// logout handler. The handler runs regardless of the fetch state.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.username = ""
	c.submitted = false
	c.state = Idle{}
	c.displayName = ""
	c.mu.Unlock()

	return c.logout.Logout(ctx)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if l, ok := state.(Loaded); ok {
		state = Loaded{Records: append([]metrics.ChartRecord(nil), l.Records...)}
	}

	return Snapshot{
		DisplayName:   c.displayName,
		Username:      c.username,
		Submitted:     c.submitted,
		State:         state,
		ReverseInput:  c.reverseInput,
		ReverseOutput: c.reverseOutput,
	}
}

// Wait blocks until every fetch goroutine started by Submit has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
