// Package memory provides the process-local record store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/userhub/users-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on a map keyed by ID, with a
// side slice to keep insertion order for List.
//
// The mutex keeps the map and the order slice consistent under concurrent
// requests. It does not make check-then-create sequences atomic: two creates
// racing on the same email can both pass the service's duplicate check.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.User
	order []string

	newID func() string
	now   func() time.Time
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]domain.User),
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

// FindByEmail scans all records. There is no secondary index.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.Email == email {
			return &u, true
		}
	}
	return nil, false
}

func (r *UserRepository) Create(_ context.Context, username, email string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for _, taken := r.byID[id]; taken; _, taken = r.byID[id] {
		id = r.newID()
	}

	u := domain.User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: r.now().Truncate(time.Millisecond),
	}
	r.byID[id] = u
	r.order = append(r.order, id)
	return &u
}

func (r *UserRepository) List(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *UserRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *UserRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
