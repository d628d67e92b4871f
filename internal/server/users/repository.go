package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tweetstats/internal/common"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
}

// InMemoryRepository keeps users in a map keyed by login.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

// Create stores user, replacing any user with the same login.
func (r *InMemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[u.UserName] = &u
	return &u, nil
}

func (r *InMemoryRepository) GetUserByLogin(_ context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}
