// Package profiles serves canned public metrics for known usernames.
package profiles

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tweetstats/internal/common"
	"github.com/dmitrijs2005/tweetstats/internal/server/config"
)

type PublicMetrics struct {
	FollowersCount *int64 `json:"followers_count,omitempty"`
	FollowingCount *int64 `json:"following_count,omitempty"`
	TweetCount     *int64 `json:"tweet_count,omitempty"`
	ListedCount    *int64 `json:"listed_count,omitempty"`
}

type Profile struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Username      string         `json:"username"`
	PublicMetrics *PublicMetrics `json:"public_metrics,omitempty"`
}

type Repository interface {
	Lookup(ctx context.Context, username string) (*Profile, error)
}

// InMemoryRepository matches usernames exactly.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewInMemoryRepository(seed []config.Profile) *InMemoryRepository {
	r := &InMemoryRepository{profiles: make(map[string]Profile, len(seed))}
	for _, p := range seed {
		r.Put(fromConfig(p))
	}
	return r
}

func fromConfig(p config.Profile) Profile {
	out := Profile{ID: p.ID, Name: p.Name, Username: p.Username}
	if p.FollowersCount != nil || p.FollowingCount != nil || p.TweetCount != nil || p.ListedCount != nil {
		out.PublicMetrics = &PublicMetrics{
			FollowersCount: p.FollowersCount,
			FollowingCount: p.FollowingCount,
			TweetCount:     p.TweetCount,
			ListedCount:    p.ListedCount,
		}
	}
	return out
}

func (r *InMemoryRepository) Put(p Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Username] = p
}

func (r *InMemoryRepository) Lookup(_ context.Context, username string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}
