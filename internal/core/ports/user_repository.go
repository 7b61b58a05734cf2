package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// UserRepository is the record store. It owns every domain.User instance and
// hands out copies only. Uniqueness rules are not enforced here.
type UserRepository interface {
	// FindByID returns the record and true, or nil and false when absent.
	FindByID(ctx context.Context, id string) (*domain.User, bool)
	// FindByEmail performs an exact-match scan over all records.
	FindByEmail(ctx context.Context, email string) (*domain.User, bool)
	// Create assigns a fresh identifier and creation time and stores the record.
	Create(ctx context.Context, username, email string) *domain.User
	// List returns every record in insertion order. Never nil.
	List(ctx context.Context) []domain.User
	// Delete removes the record and reports whether one was removed.
	Delete(ctx context.Context, id string) bool
	Count(ctx context.Context) int
}
