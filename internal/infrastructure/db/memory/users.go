// Package memory holds the in-process repositories of the development backend.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	u := *user
	u.ID = strconv.Itoa(r.nextID)
	r.users[u.Username] = u

	out := u
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}
